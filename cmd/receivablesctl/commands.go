package main

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/ledgerline/receivables/config"
	"github.com/ledgerline/receivables/internal/application/usecase/dunning"
	"github.com/ledgerline/receivables/internal/application/usecase/reconciliation"
	domainerror "github.com/ledgerline/receivables/internal/domain/error"
	"github.com/ledgerline/receivables/internal/infra/dependency"
	"github.com/ledgerline/receivables/internal/integration/entrypoint/dto"
)

// opener builds the application graph and returns a cleanup func.
type opener func(cfg *config.Config) (*dependency.Injector, func(), error)

type cli struct {
	open     opener
	injector *dependency.Injector
	cleanup  func()
	tenant   string
}

func newRootCmd(open opener) *cobra.Command {
	c := &cli{open: open}

	rootCmd := &cobra.Command{
		Use:           "receivablesctl",
		Short:         "Run reconciliation and dunning passes for a tenant",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if c.cleanup != nil {
				c.cleanup()
			}
		},
	}
	rootCmd.PersistentFlags().StringVarP(&c.tenant, "tenant", "t", "", "Tenant ID (required)")

	rootCmd.AddCommand(c.reconcileCmd())
	rootCmd.AddCommand(c.duplicatesCmd())
	rootCmd.AddCommand(c.statsCmd())
	rootCmd.AddCommand(c.dunningCmd())
	rootCmd.AddCommand(c.statusCmd())
	rootCmd.AddCommand(c.agingCmd())
	rootCmd.AddCommand(c.tokenCmd())
	rootCmd.AddCommand(c.purgeEmailsCmd())

	return rootCmd
}

// app lazily wires dependencies so --help never touches the database.
func (c *cli) app() (*dependency.Injector, error) {
	if c.injector != nil {
		return c.injector, nil
	}
	injector, cleanup, err := c.open(config.Load())
	if err != nil {
		return nil, fmt.Errorf("failed to initialize: %w", err)
	}
	c.injector, c.cleanup = injector, cleanup
	return injector, nil
}

func (c *cli) tenantID() (uuid.UUID, error) {
	if c.tenant == "" {
		return uuid.Nil, fmt.Errorf("--tenant is required")
	}
	id, err := uuid.Parse(c.tenant)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid tenant ID %q: %w", c.tenant, err)
	}
	return id, nil
}

func (c *cli) reconcileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reconcile [connection-id]",
		Short: "Match unmatched credits on a bank connection to open invoices",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tenantID, connectionID, injector, err := c.connectionScope(args[0])
			if err != nil {
				return err
			}
			result, err := injector.MatchTransactions.Execute(cmd.Context(), reconciliation.MatchTransactionsInput{
				ConnectionID: connectionID,
				TenantID:     tenantID,
				Criteria:     dependency.MatchCriteria(injector.Config),
			})
			if err != nil {
				return err
			}
			return writeJSON(cmd, dto.ToReconcileResponse(result))
		},
	}
}

func (c *cli) duplicatesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "duplicates [connection-id]",
		Short: "List likely duplicate transactions on a bank connection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tenantID, connectionID, injector, err := c.connectionScope(args[0])
			if err != nil {
				return err
			}
			criteria := dependency.DuplicateCriteria(injector.Config)
			records, err := injector.FindDuplicates.Execute(cmd.Context(), reconciliation.FindDuplicatesInput{
				ConnectionID: connectionID,
				TenantID:     tenantID,
				Criteria:     &criteria,
			})
			if err != nil {
				return err
			}
			return writeJSON(cmd, dto.ToDuplicatesResponse(records))
		},
	}
}

func (c *cli) statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats [connection-id]",
		Short: "Show matching statistics for a bank connection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tenantID, connectionID, injector, err := c.connectionScope(args[0])
			if err != nil {
				return err
			}
			stats, err := injector.MatchingStats.Execute(cmd.Context(), reconciliation.GetMatchingStatsInput{
				ConnectionID: connectionID,
				TenantID:     tenantID,
			})
			if err != nil {
				return err
			}
			return writeJSON(cmd, dto.ToMatchingStatsResponse(stats))
		},
	}
}

func (c *cli) dunningCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dunning",
		Short: "Run one dunning pass over the tenant's unpaid invoices",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tenantID, err := c.tenantID()
			if err != nil {
				return err
			}
			injector, err := c.app()
			if err != nil {
				return err
			}
			result, err := injector.ProcessDunning.Execute(cmd.Context(), dunning.ProcessDunningInput{
				TenantID: tenantID,
				Config:   dependency.DunningConfig(injector.Config),
			})
			if err != nil {
				return err
			}
			return writeJSON(cmd, dto.ToDunningResultResponse(result))
		},
	}
}

func (c *cli) statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status [invoice-id]",
		Short: "Show the dunning state of one invoice",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			invoiceID, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("%w %q: %v", domainerror.ErrInvalidInvoiceID, args[0], err)
			}
			injector, err := c.app()
			if err != nil {
				return err
			}
			status, err := injector.DunningStatus.Execute(cmd.Context(), invoiceID)
			if err != nil {
				return err
			}
			return writeJSON(cmd, dto.ToDunningStatusResponse(status))
		},
	}
}

func (c *cli) agingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "aging",
		Short: "Show the tenant's unpaid invoices by age bucket",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tenantID, err := c.tenantID()
			if err != nil {
				return err
			}
			injector, err := c.app()
			if err != nil {
				return err
			}
			buckets, err := injector.InvoiceAging.Execute(cmd.Context(), tenantID)
			if err != nil {
				return err
			}
			return writeJSON(cmd, dto.ToAgingResponse(buckets))
		},
	}
}

func (c *cli) tokenCmd() *cobra.Command {
	var subject string
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a service token for the job trigger API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tenantID, err := c.tenantID()
			if err != nil {
				return err
			}
			injector, err := c.app()
			if err != nil {
				return err
			}
			token, err := injector.TokenService.GenerateServiceToken(cmd.Context(), tenantID, subject)
			if err != nil {
				return err
			}
			return writeJSON(cmd, map[string]string{"token": token})
		},
	}
	cmd.Flags().StringVar(&subject, "subject", "receivablesctl", "Token subject")
	return cmd
}

func (c *cli) purgeEmailsCmd() *cobra.Command {
	var olderThanDays int
	cmd := &cobra.Command{
		Use:   "purge-emails",
		Short: "Delete sent dunning emails from the queue",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if olderThanDays < 0 {
				return fmt.Errorf("--older-than-days must not be negative")
			}
			injector, err := c.app()
			if err != nil {
				return err
			}
			deleted, err := injector.EmailWorker.PurgeSent(cmd.Context(), olderThanDays)
			if err != nil {
				return err
			}
			return writeJSON(cmd, map[string]int64{"deleted": deleted})
		},
	}
	cmd.Flags().IntVar(&olderThanDays, "older-than-days", 30, "Only purge emails sent before this many days ago")
	return cmd
}

func (c *cli) connectionScope(rawConnectionID string) (uuid.UUID, uuid.UUID, *dependency.Injector, error) {
	tenantID, err := c.tenantID()
	if err != nil {
		return uuid.Nil, uuid.Nil, nil, err
	}
	connectionID, err := uuid.Parse(rawConnectionID)
	if err != nil {
		return uuid.Nil, uuid.Nil, nil, fmt.Errorf("invalid connection ID %q: %w", rawConnectionID, err)
	}
	injector, err := c.app()
	if err != nil {
		return uuid.Nil, uuid.Nil, nil, err
	}
	return tenantID, connectionID, injector, nil
}

func writeJSON(cmd *cobra.Command, v interface{}) error {
	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

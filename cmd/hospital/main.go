package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pemochamdev/gestion-hospitaliere/internal/config"
	"github.com/pemochamdev/gestion-hospitaliere/internal/handler/console"
	"github.com/pemochamdev/gestion-hospitaliere/internal/repository/jsonstore"
	"github.com/pemochamdev/gestion-hospitaliere/internal/service/account"
	"github.com/pemochamdev/gestion-hospitaliere/internal/service/appointment"
	"github.com/pemochamdev/gestion-hospitaliere/internal/service/department"
	"github.com/pemochamdev/gestion-hospitaliere/internal/service/invoice"
	"github.com/pemochamdev/gestion-hospitaliere/internal/service/patient"
	"github.com/pemochamdev/gestion-hospitaliere/internal/service/pharmacy"
	"github.com/pemochamdev/gestion-hospitaliere/internal/service/staff"
	"github.com/pemochamdev/gestion-hospitaliere/internal/service/stats"
	apperrors "github.com/pemochamdev/gestion-hospitaliere/pkg/errors"
	"github.com/pemochamdev/gestion-hospitaliere/pkg/logger"
	"github.com/pemochamdev/gestion-hospitaliere/pkg/security"
	"github.com/pemochamdev/gestion-hospitaliere/pkg/validator"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "hospital",
		Short:        "Hospital administration console",
		Long:         "Single-operator console for hospital administrative records: patients, staff, appointments, services, pharmacy stock, invoices and user accounts.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMenu(cmd)
		},
	}

	cmd.PersistentFlags().String("data", "", "path to the data file (overrides config)")
	viper.BindPFlag("store.path", cmd.PersistentFlags().Lookup("data"))

	cmd.AddCommand(newStatsCmd())
	return cmd
}

func runMenu(cmd *cobra.Command) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	if !cfg.Console.Color {
		color.NoColor = true
	}
	log := logger.NewLogger(&logger.Config{Level: logger.ParseLevel(cfg.Log.Level)})

	ctx := cmd.Context()
	prompt := console.NewPrompter(os.Stdin, os.Stdout)

	store := jsonstore.NewStore(cfg.Store.Path)
	app, err := store.Load(ctx)
	if err != nil {
		if !apperrors.IsCode(err, apperrors.ErrCorruptStore) {
			return err
		}
		log.Error(err, "data file could not be loaded")
		if !console.ConfirmDiscard(prompt, os.Stdout, store.Path()) {
			return err
		}
	}

	validate := validator.New()
	hasher := security.NewBcryptHasher(cfg.Security.BcryptCost)

	handler := console.NewHandler(prompt, os.Stdout, log, console.Services{
		Patients:     patient.NewService(app, store, validate),
		Staff:        staff.NewService(app, store, validate),
		Appointments: appointment.NewService(app, store, validate),
		Departments:  department.NewService(app, store, validate),
		Pharmacy:     pharmacy.NewService(app, store, validate),
		Invoices:     invoice.NewService(app, store, validate),
		Accounts:     account.NewService(app, store, validate, hasher),
		Stats:        stats.NewService(app),
	})

	handler.Run(ctx)
	return nil
}

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print the statistics dashboard and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}

			store := jsonstore.NewStore(cfg.Store.Path)
			app, err := store.Load(cmd.Context())
			if err != nil {
				// Non-interactive: never discard a corrupt store silently.
				return err
			}

			o := stats.NewService(app).Overview(cmd.Context())
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Patients: %d\n", o.Patients)
			fmt.Fprintf(out, "Staff members: %d\n", o.Staff)
			fmt.Fprintf(out, "Services: %d\n", o.Services)
			fmt.Fprintf(out, "Appointments today: %d\n", o.AppointmentsToday)
			fmt.Fprintf(out, "Paid invoices total: %.2f\n", o.PaidInvoiceTotal)
			fmt.Fprintf(out, "Medications below stock threshold: %d\n", o.LowStockMedications)
			return nil
		},
	}
}

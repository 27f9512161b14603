package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/diillson/wlan-autoassign-go/internal/domain/entity"
	"github.com/diillson/wlan-autoassign-go/internal/shared/types"
)

// ErrPartialFailure é retornado quando parte dos perfis não recebeu o serviço.
var ErrPartialFailure = errors.New("some profiles could not be assigned")

func (app *CLIApp) newCreateCommand() *cobra.Command {
	var (
		spec     entity.ServiceSpec
		security string
		band     string
		vlan     int
		disabled bool
		opts     entity.AssignmentOptions
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a WLAN service and assign it to every profile of the given sites",
		RunE: func(cmd *cobra.Command, _ []string) error {
			spec.Security = entity.SecurityType(security)
			spec.Band = entity.Band(band)
			spec.Enabled = !disabled
			if cmd.Flags().Changed("vlan") {
				spec.VLANID = &vlan
			}

			s, err := app.newSession(cmd, true)
			if err != nil {
				return err
			}
			defer s.Close()

			if s.cfg.Assignment.SkipSync {
				opts.SkipSync = true
			}

			s.primeSiteNames(cmd.Context())
			app.console.LogInfo("Creating service %s for %d sites", spec.Name, len(spec.Sites))
			resp, err := s.assignment.CreateWLANWithAutoAssignment(cmd.Context(), spec, opts)
			if err != nil {
				return err
			}

			return app.finish(cmd, s, resp)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&spec.Name, "name", "", "Service name")
	flags.StringVar(&spec.SSID, "ssid", "", "Broadcast SSID")
	flags.StringVar(&security, "security", string(entity.SecurityWPA2Personal), "Security: open, wpa2-personal, wpa3-personal, wpa2-enterprise")
	flags.StringVar(&spec.Passphrase, "passphrase", "", "Pre-shared key (required unless security is open)")
	flags.IntVar(&vlan, "vlan", 0, "VLAN id (1-4094)")
	flags.StringVar(&band, "band", string(entity.BandDual), "Band: 2.4GHz, 5GHz, 6GHz, dual, all")
	flags.BoolVar(&disabled, "disabled", false, "Create the service disabled")
	flags.StringSliceVarP(&spec.Sites, "sites", "s", nil, "Site ids that receive the service (comma-separated)")
	flags.BoolVar(&opts.DryRun, "dry-run", false, "Create the service and list the profiles without assigning them")
	flags.BoolVar(&opts.SkipSync, "skip-sync", false, "Do not push the profiles to the devices")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("ssid")
	_ = cmd.MarkFlagRequired("sites")

	return cmd
}

func (app *CLIApp) newDeployCommand() *cobra.Command {
	var (
		planFile string
		opts     entity.AssignmentOptions
	)

	cmd := &cobra.Command{
		Use:   "deploy",
		Short: "Deploy a WLAN service following a per-site plan file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			plan, err := app.configRepo.LoadDeploymentPlan(planFile)
			if err != nil {
				return err
			}

			s, err := app.newSession(cmd, true)
			if err != nil {
				return err
			}
			defer s.Close()

			if s.cfg.Assignment.SkipSync {
				opts.SkipSync = true
			}

			s.primeSiteNames(cmd.Context())
			app.console.LogInfo("Deploying service %s to %d sites", plan.Service.Name, len(plan.Sites))
			resp, err := s.assignment.CreateWLANWithSiteCentricDeployment(cmd.Context(), plan.Service, plan.Sites, opts)
			if err != nil {
				if errors.Is(err, types.ErrInvalidSiteConfig) {
					app.console.LogError("Deployment plan is invalid, nothing was changed")
				}
				return err
			}

			return app.finish(cmd, s, resp.AsAutoAssignment())
		},
	}

	cmd.Flags().StringVar(&planFile, "plan", "", "Deployment plan file (TOML, YAML or JSON)")
	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "Create the service and compute the effective sets without assigning")
	cmd.Flags().BoolVar(&opts.SkipSync, "skip-sync", false, "Do not push the profiles to the devices")
	_ = cmd.MarkFlagRequired("plan")

	return cmd
}

func (app *CLIApp) newPreviewCommand() *cobra.Command {
	var sites []string

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "List the profiles a service would reach, without changing anything",
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := app.newSession(cmd, true)
			if err != nil {
				return err
			}
			defer s.Close()

			status := app.console.Status("Discovering profiles...")
			s.primeSiteNames(cmd.Context())
			profiles := s.assignment.PreviewProfilesForSites(cmd.Context(), sites)
			status.Stop()

			s.reports.DisplayPreview(profiles)
			return nil
		},
	}

	cmd.Flags().StringSliceVarP(&sites, "sites", "s", nil, "Site ids to inspect (comma-separated)")
	_ = cmd.MarkFlagRequired("sites")

	return cmd
}

func (app *CLIApp) newValidateCommand() *cobra.Command {
	var planFile string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Show the effective profile set and validation of every site in a plan",
		RunE: func(cmd *cobra.Command, _ []string) error {
			plan, err := app.configRepo.LoadDeploymentPlan(planFile)
			if err != nil {
				return err
			}

			s, err := app.newSession(cmd, true)
			if err != nil {
				return err
			}
			defer s.Close()

			status := app.console.Status("Discovering profiles...")
			s.primeSiteNames(cmd.Context())
			evaluations := s.assignment.EvaluateSiteAssignments(cmd.Context(), plan.Sites)
			status.Stop()

			if !s.reports.DisplayEvaluations(evaluations) {
				return types.ErrInvalidSiteConfig
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&planFile, "plan", "", "Deployment plan file (TOML, YAML or JSON)")
	_ = cmd.MarkFlagRequired("plan")

	return cmd
}

func (app *CLIApp) newHistoryCommand() *cobra.Command {
	var (
		limit int
		runID string
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List previous runs",
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := app.newSession(cmd, false)
			if err != nil {
				return err
			}
			defer s.Close()

			if runID != "" {
				return s.reports.DisplayRun(runID)
			}
			return s.reports.DisplayHistory(limit)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "l", 20, "Number of runs to list")
	cmd.Flags().StringVar(&runID, "run", "", "Show the details of one run")

	return cmd
}

// finish exibe e exporta o resultado. Falhas parciais viram ErrPartialFailure para o exit code.
func (app *CLIApp) finish(cmd *cobra.Command, s *session, resp *entity.AutoAssignmentResponse) error {
	s.reports.DisplayAssignmentResults(resp)
	s.reports.ExportReports(cmd.Context(), resp, s.cfg.Report)

	if !resp.Success && !resp.DryRun {
		return fmt.Errorf("%w: %d of %d failed", ErrPartialFailure, resp.FailedCount(), len(resp.AssignmentResults))
	}
	return nil
}

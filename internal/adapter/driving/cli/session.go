package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/diillson/wlan-autoassign-go/internal/adapter/driven/archive"
	"github.com/diillson/wlan-autoassign-go/internal/adapter/driven/controller"
	"github.com/diillson/wlan-autoassign-go/internal/adapter/driven/history"
	"github.com/diillson/wlan-autoassign-go/internal/application/usecase"
	"github.com/diillson/wlan-autoassign-go/internal/domain/repository"
	"github.com/diillson/wlan-autoassign-go/internal/shared/types"
	"github.com/diillson/wlan-autoassign-go/pkg/logger"
)

// session reúne as dependências montadas para um único comando.
type session struct {
	cfg        *types.Config
	log        zerolog.Logger
	controller repository.ControllerRepository
	siteNames  *usecase.SiteNameCache
	history    repository.HistoryRepository
	assignment *usecase.AssignmentUseCase
	reports    *usecase.ReportUseCase
}

// newSession monta a sessão do comando. withController=false é usado pelos comandos
// que só leem o histórico e não precisam de credenciais.
func (app *CLIApp) newSession(cmd *cobra.Command, withController bool) (*session, error) {
	args, err := parseArgs(cmd)
	if err != nil {
		return nil, err
	}

	cfg, err := app.loadConfig(args)
	if err != nil {
		return nil, err
	}

	log, err := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Output: cfg.Log.Output,
		Format: cfg.Log.Format,
	})
	if err != nil {
		return nil, fmt.Errorf("invalid log configuration: %w", err)
	}

	s := &session{cfg: cfg, log: log}

	if !cfg.History.Disabled {
		h, err := history.NewBoltRepository(cfg.History.Path)
		if err != nil {
			app.console.LogWarning("Run history unavailable: %s", err)
			log.Warn().Err(err).Str("path", cfg.History.Path).Msg("history disabled")
		} else {
			s.history = h
		}
	}

	var arc repository.ArchiveRepository
	if cfg.Report.Bucket != "" {
		arc, err = archive.NewS3Archive(cmd.Context(), cfg.Report, log)
		if err != nil {
			app.console.LogWarning("Reports will not be archived: %s", err)
		}
	}
	s.reports = usecase.NewReportUseCase(app.exportRepo, arc, s.history, app.console)

	if !withController {
		return s, nil
	}

	callTimeout, err := time.ParseDuration(cfg.Assignment.CallTimeout)
	if err != nil {
		s.Close()
		return nil, fmt.Errorf("invalid call timeout %q: %w", cfg.Assignment.CallTimeout, err)
	}

	client, err := controller.NewClient(cfg.Controller, log)
	if err != nil {
		s.Close()
		return nil, err
	}

	s.controller = controller.NewControllerRepository(client)
	s.siteNames = usecase.NewSiteNameCache(s.controller)
	s.assignment = usecase.NewAssignmentUseCase(
		s.controller,
		s.history,
		s.siteNames,
		app.console,
		usecase.AssignmentSettings{
			BatchSize:   cfg.Assignment.BatchSize,
			CallTimeout: callTimeout,
		},
		log,
	)

	return s, nil
}

// primeSiteNames carrega todos os nomes de site com uma única chamada.
// Falhar aqui não é fatal; os nomes são resolvidos um a um depois.
func (s *session) primeSiteNames(ctx context.Context) {
	sites, err := s.controller.GetSites(ctx)
	if err != nil {
		s.log.Debug().Err(err).Msg("could not list sites, names will be resolved on demand")
		return
	}
	s.siteNames.Prime(sites)
}

func (s *session) Close() {
	if s.history == nil {
		return
	}
	if err := s.history.Close(); err != nil {
		s.log.Warn().Err(err).Msg("failed to close history")
	}
}

package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/bnema/twich/internal/application/port"
	"github.com/bnema/twich/internal/domain/entity"
	"github.com/bnema/twich/internal/filtering"
	"github.com/bnema/twich/internal/logging"
)

// InstallFiltersUseCase hands the block rules to the engine's native
// content blocker so blocked loads never leave the process.
type InstallFiltersUseCase struct {
	installer port.ContentFilterInstaller
	rules     []*entity.BlockRule
}

// NewInstallFiltersUseCase creates the installer use case.
func NewInstallFiltersUseCase(installer port.ContentFilterInstaller, rules []*entity.BlockRule) *InstallFiltersUseCase {
	return &InstallFiltersUseCase{
		installer: installer,
		rules:     rules,
	}
}

// Execute compiles and attaches the rules. done, if non-nil, receives the
// outcome once the engine has finished compiling.
func (uc *InstallFiltersUseCase) Execute(ctx context.Context, done func(error)) error {
	log := logging.FromContext(ctx)

	data, err := filtering.ContentBlockerJSON(uc.rules)
	if err != nil {
		return fmt.Errorf("build content blocker: %w", err)
	}

	started := time.Now()
	uc.installer.InstallContentFilter(ctx, filtering.ContentBlockerIdentifier, data, func(err error) {
		if err != nil {
			log.Error().Err(err).Msg("filters: content blocker installation failed")
		} else {
			log.Info().
				Int("rules", len(uc.rules)).
				Dur("took", time.Since(started)).
				Msg("filters: content blocker active")
		}
		if done != nil {
			done(err)
		}
	})
	return nil
}

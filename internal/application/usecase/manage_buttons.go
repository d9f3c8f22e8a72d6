package usecase

import (
	"context"
	"fmt"

	"github.com/filein/sidedock/internal/application/port"
	"github.com/filein/sidedock/internal/domain/entity"
	"github.com/filein/sidedock/internal/logging"
)

// ButtonOptions selects which built-in buttons the sidebar carries.
type ButtonOptions struct {
	PinButton    bool
	PinOnIcon    string
	PinOffIcon   string
	SettingsIcon string
}

// ManageButtonsUseCase owns the sidebar buttons and their toggle state.
type ManageButtonsUseCase struct {
	buttons *entity.ButtonSet
	panel   *PanelController
}

// NewManageButtonsUseCase builds the button set from options and the
// extension catalog. A nil catalog contributes no buttons; a failing
// catalog is logged and skipped.
func NewManageButtonsUseCase(
	ctx context.Context,
	opts ButtonOptions,
	catalog port.ExtensionCatalog,
	panel *PanelController,
) (*ManageButtonsUseCase, error) {
	log := logging.FromContext(ctx)
	set := entity.NewButtonSet()

	if opts.PinButton {
		pin := entity.SidebarButton{
			ID:      entity.ButtonPin,
			Kind:    entity.ButtonToggle,
			Label:   "Pin",
			OnIcon:  opts.PinOnIcon,
			OffIcon: opts.PinOffIcon,
			Active:  panel != nil && panel.Locked(),
		}
		if err := set.Add(pin); err != nil {
			return nil, err
		}
	}

	if err := set.Add(entity.SidebarButton{
		ID:     entity.ButtonSettings,
		Kind:   entity.ButtonAction,
		Label:  "Settings",
		OnIcon: opts.SettingsIcon,
	}); err != nil {
		return nil, err
	}

	if catalog != nil {
		extensions, err := catalog.List(ctx)
		if err != nil {
			log.Warn().Err(err).Msg("failed to list extensions")
		}
		for _, ext := range extensions {
			err := set.Add(entity.SidebarButton{
				ID:      ext.ButtonID(),
				Kind:    entity.ButtonAction,
				Label:   ext.Name,
				OnIcon:  ext.Icon,
				Command: ext.Command,
			})
			if err != nil {
				log.Warn().Err(err).Str("extension", ext.ID).Msg("skipping extension button")
			}
		}
	}

	log.Debug().Int("buttons", set.Len()).Msg("sidebar buttons ready")
	return &ManageButtonsUseCase{buttons: set, panel: panel}, nil
}

// Buttons returns the buttons in display order.
func (uc *ManageButtonsUseCase) Buttons() []entity.SidebarButton {
	return uc.buttons.Buttons()
}

// Toggle flips a toggle button. Toggling the pin button locks or unlocks
// dragging on the panel.
func (uc *ManageButtonsUseCase) Toggle(ctx context.Context, id entity.ButtonID) (entity.SidebarButton, error) {
	b, err := uc.buttons.Toggle(id)
	if err != nil {
		return entity.SidebarButton{}, fmt.Errorf("failed to toggle button: %w", err)
	}

	if id == entity.ButtonPin && uc.panel != nil {
		uc.panel.SetLocked(b.Active)
	}

	logging.FromContext(ctx).Debug().
		Str("button", string(id)).
		Bool("active", b.Active).
		Msg("button toggled")
	return b, nil
}

// Activate returns the command bound to an action button.
func (uc *ManageButtonsUseCase) Activate(ctx context.Context, id entity.ButtonID) (string, error) {
	b, ok := uc.buttons.Get(id)
	if !ok {
		return "", fmt.Errorf("failed to activate button: %w: %s", entity.ErrButtonNotFound, id)
	}
	if b.Kind == entity.ButtonToggle {
		toggled, err := uc.Toggle(ctx, id)
		if err != nil {
			return "", err
		}
		return toggled.Command, nil
	}

	logging.FromContext(ctx).Info().Str("button", string(id)).Msg("button activated")
	return b.Command, nil
}

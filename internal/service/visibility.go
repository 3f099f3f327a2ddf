package service

import (
	"context"
	"log/slog"

	"github.com/dnlmlszl/realtime-dms-backend/internal/errs"
	"github.com/dnlmlszl/realtime-dms-backend/internal/models"
	"github.com/dnlmlszl/realtime-dms-backend/internal/storage"
)

// VisibilityService maintains the per-(user, client) visibility override
// records layered on top of each entity's own global hidden flag.
type VisibilityService struct {
	store storage.Store
}

// NewVisibilityService creates a new VisibilityService with the given storage backend.
func NewVisibilityService(store storage.Store) *VisibilityService {
	return &VisibilityService{store: store}
}

// HideEntityForClient marks one entity as hidden for a (user, client) pair.
// The settings record is created on first use; an existing (entityId,
// entityType) entry is re-marked hidden, a missing one is appended. The
// operation is hide-only: no inverse exists in the current surface.
func (s *VisibilityService) HideEntityForClient(ctx context.Context, userID, clientID, entityID, entityType string) (*models.ClientSettings, error) {
	const op = "VisibilityService.HideEntityForClient"
	slog.Info("HideEntityForClient", "user_id", userID, "client_id", clientID, "entity_id", entityID, "entity_type", entityType)

	if !models.ValidEntityType(entityType) {
		return nil, errs.Wrap(errs.InvalidArgument("unknown entity type", entityType), op)
	}

	settings, err := s.store.GetSettings(ctx, userID, clientID)
	if err != nil {
		return nil, errs.Wrap(err, op, userID, clientID)
	}

	if settings == nil {
		settings = &models.ClientSettings{
			UserID:   userID,
			ClientID: clientID,
			HiddenEntities: []models.HiddenEntity{
				{EntityID: entityID, EntityType: entityType, Hidden: true},
			},
		}
		if err := s.store.CreateSettings(ctx, settings); err != nil {
			slog.Error("HideEntityForClient create failed", "user_id", userID, "client_id", clientID, "error", err)
			return nil, errs.Wrap(err, op, userID, clientID)
		}
		s.recordSettingsOnUser(ctx, userID, settings.ID)
		return settings, nil
	}

	if i := settings.FindHiddenEntity(entityID, entityType); i == -1 {
		settings.HiddenEntities = append(settings.HiddenEntities, models.HiddenEntity{
			EntityID:   entityID,
			EntityType: entityType,
			Hidden:     true,
		})
	} else {
		settings.HiddenEntities[i].Hidden = true
	}

	if err := s.store.UpdateSettings(ctx, settings); err != nil {
		slog.Error("HideEntityForClient update failed", "settings_id", settings.ID, "error", err)
		return nil, errs.Wrap(err, op, userID, clientID)
	}
	return settings, nil
}

// recordSettingsOnUser appends the new settings id to the owning user's
// settings list. Best-effort: a missing user does not fail the hide.
func (s *VisibilityService) recordSettingsOnUser(ctx context.Context, userID, settingsID string) {
	user, err := s.store.GetUser(ctx, userID)
	if err != nil {
		slog.Warn("HideEntityForClient could not record settings on user", "user_id", userID, "error", err)
		return
	}
	if containsID(user.Settings, settingsID) {
		return
	}
	user.Settings = append(user.Settings, settingsID)
	if err := s.store.UpdateUser(ctx, user); err != nil {
		slog.Warn("HideEntityForClient could not record settings on user", "user_id", userID, "error", err)
	}
}

// VisibleCategoriesForClient returns the categories visible for a client.
// The override record is looked up by client id only, not per user; when
// several users hold settings for the same client, the first record wins.
// Without a record every non-globally-hidden category is visible; with one,
// categories named by a Category-typed hidden entry are excluded as well.
func (s *VisibilityService) VisibleCategoriesForClient(ctx context.Context, clientID string) ([]*models.Category, error) {
	const op = "VisibilityService.VisibleCategoriesForClient"

	settings, err := s.store.GetSettingsByClient(ctx, clientID)
	if err != nil {
		return nil, errs.Wrap(err, op, clientID)
	}

	overridden := make(map[string]bool)
	if settings != nil {
		for _, he := range settings.HiddenEntities {
			if he.EntityType == models.EntityTypeCategory && he.Hidden {
				overridden[he.EntityID] = true
			}
		}
	}

	categories, err := s.store.ListCategories(ctx)
	if err != nil {
		return nil, errs.Wrap(err, op, clientID)
	}

	visible := make([]*models.Category, 0, len(categories))
	for _, c := range categories {
		if c.Hidden || overridden[c.ID] {
			continue
		}
		visible = append(visible, c)
	}
	return visible, nil
}

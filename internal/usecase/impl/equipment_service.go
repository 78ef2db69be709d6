package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "atrium/internal/delivery/context"
	"atrium/internal/domain/entity"
	domainerrors "atrium/internal/domain/errors"
	"atrium/internal/domain/repository"
	"atrium/internal/domain/service"
	"atrium/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// equipmentService implements the EquipmentUsecase interface.
type equipmentService struct {
	gate        actorGate
	equipment   repository.EquipmentRepository
	categories  repository.EquipmentCategoryRepository
	rooms       repository.RoomRepository
	comments    repository.EquipmentCommentRepository
	reservation repository.ReservationRepository
	maintenance repository.MaintenanceRecordRepository
	qrcodes     service.QRCodeService
	views       service.ViewCache
	logger      *slog.Logger
}

// NewEquipmentService is the constructor for equipmentService.
func NewEquipmentService(
	userRepo repository.UserRepository,
	equipmentRepo repository.EquipmentRepository,
	categoryRepo repository.EquipmentCategoryRepository,
	roomRepo repository.RoomRepository,
	commentRepo repository.EquipmentCommentRepository,
	reservationRepo repository.ReservationRepository,
	maintenanceRepo repository.MaintenanceRecordRepository,
	qrcodes service.QRCodeService,
	views service.ViewCache,
	logger *slog.Logger,
) usecase.EquipmentUsecase {
	return &equipmentService{
		gate:        actorGate{users: userRepo},
		equipment:   equipmentRepo,
		categories:  categoryRepo,
		rooms:       roomRepo,
		comments:    commentRepo,
		reservation: reservationRepo,
		maintenance: maintenanceRepo,
		qrcodes:     qrcodes,
		views:       views,
		logger:      logger,
	}
}

// log returns the request-scoped logger when present, otherwise the service logger.
func (srv *equipmentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListEquipment retrieves the equipment placed in a room.
func (srv *equipmentService) ListEquipment(ctx context.Context, roomID uuid.UUID) ([]*entity.Equipment, error) {
	equipment, err := srv.equipment.FindByRoom(ctx, roomID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list equipment")
	}

	return equipment, nil
}

// GetEquipment retrieves a single piece of equipment by id.
func (srv *equipmentService) GetEquipment(ctx context.Context, id uuid.UUID) (*entity.Equipment, error) {
	equipment, err := srv.equipment.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrEquipmentNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("equipment not found")
		}

		return nil, errors.Wrap(err, "failed to get equipment")
	}

	return equipment, nil
}

// GetEquipmentDetail aggregates everything the equipment detail view shows.
// The related collections are independent, so they are fetched concurrently
// once the equipment row itself is confirmed to exist.
func (srv *equipmentService) GetEquipmentDetail(ctx context.Context, id uuid.UUID) (*usecase.EquipmentDetail, error) {
	if cached, ok := srv.views.Get(equipmentDetailView(id)); ok {
		if detail, ok := cached.(*usecase.EquipmentDetail); ok {
			return detail, nil
		}
	}

	equipment, err := srv.GetEquipment(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := &usecase.EquipmentDetail{Equipment: equipment}

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		category, err := srv.categories.FindByID(groupCtx, equipment.CategoryID)
		if err != nil {
			return errors.Wrap(err, "failed to load category")
		}
		detail.Category = category

		return nil
	})

	group.Go(func() error {
		room, err := srv.rooms.FindByID(groupCtx, equipment.RoomID)
		if err != nil {
			return errors.Wrap(err, "failed to load room")
		}
		detail.Room = room

		return nil
	})

	group.Go(func() error {
		comments, err := srv.comments.FindByEquipment(groupCtx, id)
		if err != nil {
			return errors.Wrap(err, "failed to load comments")
		}
		comments, err = attachCommentAuthors(groupCtx, srv.gate.users, comments)
		if err != nil {
			return err
		}
		detail.Comments = comments

		return nil
	})

	group.Go(func() error {
		reservations, err := srv.reservation.FindByEquipment(groupCtx, id)
		if err != nil {
			return errors.Wrap(err, "failed to load reservations")
		}
		detail.Reservations = reservations

		return nil
	})

	group.Go(func() error {
		records, err := srv.maintenance.FindByEquipment(groupCtx, id)
		if err != nil {
			return errors.Wrap(err, "failed to load maintenance records")
		}
		detail.Maintenance = records

		return nil
	})

	if err := group.Wait(); err != nil {
		return nil, errors.Wrap(err, "failed to aggregate equipment detail")
	}

	srv.views.Set(equipmentDetailView(id), detail)

	return detail, nil
}

// CreateEquipment validates and persists a new piece of equipment.
func (srv *equipmentService) CreateEquipment(ctx context.Context, actorID uuid.UUID, input *usecase.CreateEquipmentInput) (*entity.Equipment, error) {
	if _, err := srv.gate.equipmentManager(ctx, actorID); err != nil {
		return nil, err
	}

	equipment, err := entity.NewEquipment(uuid.New(), input.Name, input.CategoryID, input.RoomID, time.Now())
	if err != nil {
		return nil, err
	}

	if err := srv.equipment.Save(ctx, equipment); err != nil {
		if errors.Is(err, repository.ErrEquipmentCategoryNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("equipment category not found")
		}
		if errors.Is(err, repository.ErrRoomNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("room not found")
		}

		return nil, errors.Wrap(err, "failed to create equipment")
	}

	srv.log(ctx).Info("Equipment created", "equipmentID", equipment.ID, "roomID", equipment.RoomID, "actorID", actorID)
	srv.views.Invalidate(equipmentViews(equipment.RoomID, equipment.ID)...)

	return equipment, nil
}

// UpdateEquipment validates and persists changes to a piece of equipment.
// Moving it to another room invalidates both the old and new room views.
func (srv *equipmentService) UpdateEquipment(ctx context.Context, actorID, id uuid.UUID, input *usecase.UpdateEquipmentInput) (*entity.Equipment, error) {
	if _, err := srv.gate.equipmentManager(ctx, actorID); err != nil {
		return nil, err
	}

	existing, err := srv.equipment.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrEquipmentNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("equipment not found")
		}

		return nil, errors.Wrap(err, "failed to find equipment")
	}

	equipment, err := entity.NewEquipment(id, input.Name, input.CategoryID, input.RoomID, time.Now())
	if err != nil {
		return nil, err
	}
	equipment.CreatedAt = existing.CreatedAt

	if err := srv.equipment.Save(ctx, equipment); err != nil {
		if errors.Is(err, repository.ErrEquipmentCategoryNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("equipment category not found")
		}
		if errors.Is(err, repository.ErrRoomNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("room not found")
		}

		return nil, errors.Wrap(err, "failed to update equipment")
	}

	srv.log(ctx).Info("Equipment updated", "equipmentID", id, "actorID", actorID)
	srv.views.Invalidate(equipmentViews(equipment.RoomID, id)...)
	if existing.RoomID != equipment.RoomID {
		srv.views.Invalidate(equipmentViews(existing.RoomID, id)...)
	}

	return equipment, nil
}

// DeleteEquipment removes a piece of equipment.
func (srv *equipmentService) DeleteEquipment(ctx context.Context, actorID, id uuid.UUID) error {
	if _, err := srv.gate.equipmentManager(ctx, actorID); err != nil {
		return err
	}

	existing, err := srv.equipment.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrEquipmentNotFound) {
			return domainerrors.ErrNotFound.WrapMessage("equipment not found")
		}

		return errors.Wrap(err, "failed to find equipment")
	}

	if err := srv.equipment.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrEquipmentNotFound) {
			return domainerrors.ErrNotFound.WrapMessage("equipment not found")
		}

		return errors.Wrap(err, "failed to delete equipment")
	}

	srv.log(ctx).Info("Equipment deleted", "equipmentID", id, "actorID", actorID)
	srv.views.Invalidate(equipmentViews(existing.RoomID, id)...)

	return nil
}

// GenerateAssetTag renders a printable QR code for the equipment. The id is
// resolved first so missing equipment yields a not-found instead of a tag
// pointing nowhere.
func (srv *equipmentService) GenerateAssetTag(ctx context.Context, id uuid.UUID) ([]byte, error) {
	equipment, err := srv.GetEquipment(ctx, id)
	if err != nil {
		return nil, err
	}

	tag, err := srv.qrcodes.GenerateAssetTag(equipment.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate asset tag")
	}

	return tag, nil
}

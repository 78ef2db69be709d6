package main

import (
	"context"
	"log/slog"
	"os"

	"atrium/config"
	"atrium/internal/delivery"
	"atrium/internal/delivery/http"
	"atrium/internal/delivery/http/middleware"
	"atrium/internal/delivery/http/router/handler"
	"atrium/internal/infra/auth"
	logs "atrium/internal/infra/log"
	"atrium/internal/infra/persistence/postgres"
	"atrium/internal/infra/qrcode"
	"atrium/internal/infra/viewcache"
	"atrium/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewBuildingRepository,
			postgres.NewFloorRepository,
			postgres.NewRoomRepository,
			postgres.NewEquipmentRepository,
			postgres.NewEquipmentCategoryRepository,
			postgres.NewEquipmentCommentRepository,
			postgres.NewReservationRepository,
			postgres.NewMaintenanceRecordRepository,
			postgres.NewSystemSettingRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			qrcode.NewQRCodeService,
			viewcache.NewMemoryViewCache,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewBuildingService,
			impl.NewFloorService,
			impl.NewRoomService,
			impl.NewEquipmentService,
			impl.NewCategoryService,
			impl.NewCommentService,
			impl.NewReservationService,
			impl.NewMaintenanceService,
			impl.NewSettingService,
			impl.NewFavoriteService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewLoggerMiddleware,
			middleware.NewRequestIDMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewUserHandler,
			handler.NewBuildingHandler,
			handler.NewFloorHandler,
			handler.NewRoomHandler,
			handler.NewEquipmentHandler,
			handler.NewCategoryHandler,
			handler.NewCommentHandler,
			handler.NewReservationHandler,
			handler.NewMaintenanceHandler,
			handler.NewSettingHandler,
			handler.NewFavoriteHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}

package setup

import (
	"github.com/iqtrace/iqtrace/internal/config"
	"github.com/iqtrace/iqtrace/internal/face"
	"github.com/iqtrace/iqtrace/internal/handler"
	"github.com/iqtrace/iqtrace/internal/service"
	"github.com/iqtrace/iqtrace/internal/storage/pg"
	"github.com/iqtrace/iqtrace/internal/utils/email"
	"github.com/iqtrace/iqtrace/internal/utils/jwt"
)

// Dependencies holds all initialized application dependencies.
type Dependencies struct {
	Storage *pg.Storage
	Handler *handler.Handler
	Jwt     jwt.JwtService
}

// SetupDependencies initializes all dependencies required for the application.
func SetupDependencies(cfg *config.Config) (*Dependencies, error) {
	storage, err := pg.New(cfg)
	if err != nil {
		return nil, err
	}

	mailer := email.New(&cfg.Private.Email)
	jwtService := jwt.New(cfg.JwtKey(), cfg.JwtTTL())
	extractor := face.NewClient(cfg.Public.FaceServiceURL, cfg.Public.ImageMaxSide)

	auth := service.NewAuth(storage, mailer, jwtService, cfg)
	faceService := service.NewFace(storage, extractor, cfg)
	room := service.NewRoom(storage)
	timelog := service.NewTimelog(storage, storage)
	verification := service.NewVerification(storage, mailer, cfg)

	h := handler.New(auth, faceService, room, timelog, verification, cfg)

	return &Dependencies{
		Storage: storage,
		Handler: h,
		Jwt:     jwtService,
	}, nil
}

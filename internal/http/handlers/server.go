package handlers

import (
	"go.uber.org/zap"

	"github.com/rogerio-castellano/dogfinder/internal/auth"
	repo "github.com/rogerio-castellano/dogfinder/internal/repo"
)

var (
	dogRepo      repo.DogRepository
	locationRepo repo.LocationRepository
	tokens       *auth.TokenService
	logger       = zap.NewNop()
)

func SetDogRepo(r repo.DogRepository) {
	dogRepo = r
}

func SetLocationRepo(r repo.LocationRepository) {
	locationRepo = r
}

func SetTokenService(ts *auth.TokenService) {
	tokens = ts
}

func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
}

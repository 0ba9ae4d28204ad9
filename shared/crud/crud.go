package crud

//go:generate go run go.uber.org/mock/mockgen -source=./crud.go -destination=./mocks/crud_mock.go -package=mocks

import (
	"context"
	"fmt"

	"hotelops/config"
	"hotelops/infras/otel"
	"hotelops/shared"
	"hotelops/shared/cache"
	"hotelops/shared/constant"
	gDto "hotelops/shared/dto"
	"hotelops/shared/failure"

	"github.com/rs/zerolog/log"
)

// Repository is the slice of the generic repository the template needs.
// shared/repository.Repository[M] satisfies it.
type Repository[M any] interface {
	Insert(ctx context.Context, model M) (M, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]M, error)
}

// Descriptor parameterizes the template for one entity: how a validated
// request becomes a model carrying server defaults, how a stored model
// becomes its public projection, and which key must stay unique.
type Descriptor[M, C, R any] struct {
	// Entity is the singular entity name used in messages and cache keys.
	Entity string

	// ToModel applies server-assigned defaults (timestamps, statuses, the
	// creating account) and may fail, e.g. when hashing a credential.
	ToModel func(ctx context.Context, req C) (M, error)

	// ToResponse maps a persisted row to its public projection.
	ToResponse func(model M) R

	// UniqueFilter, when set, locates an existing row holding the request's
	// unique key so creation can fail with a conflict up front. The database
	// constraint remains the authority under concurrent creates.
	UniqueFilter func(req C) gDto.FilterGroup

	// UniqueMessage is the conflict message for the pre-check.
	UniqueMessage string
}

// Service is the generic list/create surface every resource category shares.
type Service[M, C, R any] interface {
	Create(ctx context.Context, req C) (R, error)
	List(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]R, error)
}

type serviceImpl[M, C, R any] struct {
	desc  Descriptor[M, C, R]
	repo  Repository[M]
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func NewService[M, C, R any](desc Descriptor[M, C, R], repo Repository[M], cfg *config.Config, redisCache cache.RedisCache, otl otel.Otel) Service[M, C, R] {
	return &serviceImpl[M, C, R]{
		desc:  desc,
		repo:  repo,
		cfg:   cfg,
		cache: redisCache,
		otel:  otl,
	}
}

func (s *serviceImpl[M, C, R]) listCacheKey() string {
	return shared.BuildCacheKey(s.desc.Entity, "gets")
}

func (s *serviceImpl[M, C, R]) Create(ctx context.Context, req C) (res R, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+"."+s.desc.Entity+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	if s.desc.UniqueFilter != nil {
		exists, err := s.repo.Exist(ctx, s.desc.UniqueFilter(req))
		if err != nil {
			log.Error().Err(err).Str("entity", s.desc.Entity).Msg("failed to check uniqueness")

			return res, fmt.Errorf("failed to check uniqueness (%s): %w", s.desc.Entity, err)
		}

		if exists {
			return res, failure.Conflict(s.desc.UniqueMessage)
		}
	}

	model, err := s.desc.ToModel(ctx, req)
	if err != nil {
		log.Error().Err(err).Str("entity", s.desc.Entity).Msg("failed to build model from request")

		return res, err
	}

	inserted, err := s.repo.Insert(ctx, model)
	if err != nil {
		return res, err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, s.listCacheKey())
	}()

	return s.desc.ToResponse(inserted), nil
}

func (s *serviceImpl[M, C, R]) List(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res []R, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+"."+s.desc.Entity+".List")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(s.listCacheKey(), params, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Debug().Str("cacheKey", cacheKey).Str("entity", s.desc.Entity).Msg("cache hit")

		return res, nil
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		return nil, err
	}

	res = make([]R, len(models))
	for i, model := range models {
		res[i] = s.desc.ToResponse(model)
	}

	if err := s.cache.Save(ctx, cacheKey, res, s.cfg.Cache.TTL); err != nil {
		log.Warn().Err(err).Str("cacheKey", cacheKey).Msg("failed to cache list")
	}

	return res, nil
}

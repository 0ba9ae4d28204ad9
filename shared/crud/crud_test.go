package crud_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"hotelops/config"
	"hotelops/infras/otel/mocks"
	"hotelops/shared"
	cacheMocks "hotelops/shared/cache/mocks"
	"hotelops/shared/crud"
	crudMocks "hotelops/shared/crud/mocks"
	gDto "hotelops/shared/dto"
	"hotelops/shared/failure"
)

type widget struct {
	ID   int64
	Name string
}

type createWidgetRequest struct {
	Name string
}

type widgetResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func widgetDescriptor(withUnique bool) crud.Descriptor[widget, createWidgetRequest, widgetResponse] {
	desc := crud.Descriptor[widget, createWidgetRequest, widgetResponse]{
		Entity: "widget",
		ToModel: func(_ context.Context, req createWidgetRequest) (widget, error) {
			return widget{Name: req.Name}, nil
		},
		ToResponse: func(m widget) widgetResponse {
			return widgetResponse{ID: m.ID, Name: m.Name}
		},
	}

	if withUnique {
		desc.UniqueFilter = func(req createWidgetRequest) gDto.FilterGroup {
			return shared.FilterByField("widgets", "name", req.Name)
		}
		desc.UniqueMessage = "widget name already exists"
	}

	return desc
}

func TestServiceCreate(t *testing.T) {
	cfg := &config.Config{}
	cfg.Cache.TTL = 300

	t.Run("creates and returns projection with generated id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := crudMocks.NewMockRepository[widget](ctrl)
		redisCache := cacheMocks.NewMockRedisCache(ctrl)

		repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		repo.EXPECT().
			Insert(gomock.Any(), widget{Name: "towel rack"}).
			Return(widget{ID: 11, Name: "towel rack"}, nil)

		invalidated := make(chan struct{})
		redisCache.EXPECT().
			Clear(gomock.Any(), "widget:gets*").
			DoAndReturn(func(context.Context, string) error {
				close(invalidated)
				return nil
			})

		svc := crud.NewService(widgetDescriptor(true), repo, cfg, redisCache, mocks.NewOtel())

		res, err := svc.Create(context.Background(), createWidgetRequest{Name: "towel rack"})
		require.NoError(t, err)
		assert.Equal(t, int64(11), res.ID)
		assert.Equal(t, "towel rack", res.Name)

		select {
		case <-invalidated:
		case <-time.After(time.Second):
			t.Fatal("list cache was not invalidated after create")
		}
	})

	t.Run("duplicate unique key conflicts before insert", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := crudMocks.NewMockRepository[widget](ctrl)
		redisCache := cacheMocks.NewMockRedisCache(ctrl)

		repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		svc := crud.NewService(widgetDescriptor(true), repo, cfg, redisCache, mocks.NewOtel())

		_, err := svc.Create(context.Background(), createWidgetRequest{Name: "towel rack"})
		require.Error(t, err)
		assert.Equal(t, 409, failure.GetCode(err))
		assert.Contains(t, err.Error(), "widget name already exists")
	})

	t.Run("descriptor without unique filter skips the pre-check", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := crudMocks.NewMockRepository[widget](ctrl)
		redisCache := cacheMocks.NewMockRedisCache(ctrl)

		repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(widget{ID: 1, Name: "mop"}, nil)

		redisCache.EXPECT().
			Clear(gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		svc := crud.NewService(widgetDescriptor(false), repo, cfg, redisCache, mocks.NewOtel())

		res, err := svc.Create(context.Background(), createWidgetRequest{Name: "mop"})
		require.NoError(t, err)
		assert.Equal(t, int64(1), res.ID)
	})

	t.Run("insert failure propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := crudMocks.NewMockRepository[widget](ctrl)
		redisCache := cacheMocks.NewMockRedisCache(ctrl)

		repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(widget{}, errors.New("connection refused"))

		svc := crud.NewService(widgetDescriptor(false), repo, cfg, redisCache, mocks.NewOtel())

		_, err := svc.Create(context.Background(), createWidgetRequest{Name: "mop"})
		assert.Error(t, err)
	})
}

func TestServiceList(t *testing.T) {
	cfg := &config.Config{}
	cfg.Cache.TTL = 300

	t.Run("cache miss hits the repository and caches the result", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := crudMocks.NewMockRepository[widget](ctrl)
		redisCache := cacheMocks.NewMockRedisCache(ctrl)

		redisCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		repo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]widget{{ID: 1, Name: "mop"}, {ID: 2, Name: "broom"}}, nil)

		redisCache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), 300).
			Return(nil)

		svc := crud.NewService(widgetDescriptor(false), repo, cfg, redisCache, mocks.NewOtel())

		res, err := svc.List(context.Background(), gDto.QueryParams{}, gDto.FilterGroup{})
		require.NoError(t, err)
		require.Len(t, res, 2)
		assert.Equal(t, "mop", res[0].Name)
		assert.Equal(t, "broom", res[1].Name)
	})

	t.Run("cache hit skips the repository", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := crudMocks.NewMockRepository[widget](ctrl)
		redisCache := cacheMocks.NewMockRedisCache(ctrl)

		redisCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, value any) error {
				cached, ok := value.(*[]widgetResponse)
				require.True(t, ok)
				*cached = []widgetResponse{{ID: 9, Name: "cached"}}
				return nil
			})

		svc := crud.NewService(widgetDescriptor(false), repo, cfg, redisCache, mocks.NewOtel())

		res, err := svc.List(context.Background(), gDto.QueryParams{}, gDto.FilterGroup{})
		require.NoError(t, err)
		require.Len(t, res, 1)
		assert.Equal(t, int64(9), res[0].ID)
	})

	t.Run("repository failure propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := crudMocks.NewMockRepository[widget](ctrl)
		redisCache := cacheMocks.NewMockRedisCache(ctrl)

		redisCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		repo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("connection refused"))

		svc := crud.NewService(widgetDescriptor(false), repo, cfg, redisCache, mocks.NewOtel())

		_, err := svc.List(context.Background(), gDto.QueryParams{}, gDto.FilterGroup{})
		assert.Error(t, err)
	})
}

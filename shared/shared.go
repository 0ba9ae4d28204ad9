package shared

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"hotelops/shared/cache"
	"hotelops/shared/dto"

	"github.com/rs/zerolog/log"
)

// BuildCacheKey joins key parts with the ":" separator used across the cache.
func BuildCacheKey(parts ...string) string {
	return strings.Join(parts, ":")
}

// BuildCacheKeyWithQuery derives a stable cache key from the query parameters
// and filter. Filter args are sorted by name so identical filters always
// produce identical keys.
func BuildCacheKeyWithQuery(prefix string, params dto.QueryParams, filter dto.FilterGroup) string {
	where, args := filter.GetWhereClause()

	names := make([]string, 0, len(args))
	for name := range args {
		names = append(names, name)
	}

	sort.Strings(names)

	argParts := make([]string, 0, len(names))
	for _, name := range names {
		argParts = append(argParts, fmt.Sprintf("%s=%v", name, args[name]))
	}

	return fmt.Sprintf("%s:%d:%d:%s:%s:%s:%s",
		prefix,
		params.Page,
		params.Limit,
		params.SortBy,
		params.SortDir,
		where,
		strings.Join(argParts, ","),
	)
}

// InvalidateCaches clears every cache entry under the given prefix.
func InvalidateCaches(ctx context.Context, redisCache cache.RedisCache, prefix string) {
	if err := redisCache.Clear(ctx, prefix+"*"); err != nil {
		log.Warn().Err(err).Str("prefix", prefix).Msg("failed to invalidate cache")
	}
}

// FilterByField builds a single-field equality filter group.
func FilterByField(table, field string, value any) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    field,
				Value:    value,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}

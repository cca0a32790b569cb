package shared

import (
	"context"
	"encoding/json"
	"fmt"
	"hash/fnv"
	"math"
	"reflect"
	"strings"

	"github.com/rs/zerolog/log"

	"frontdesk/shared/cache"
	"frontdesk/shared/constant"
	"frontdesk/shared/dto"
	"frontdesk/shared/timezone"
)

// CalculateTotalPage returns ceil(total/limit). An empty result set has zero
// pages.
func CalculateTotalPage(total, limit int) (res int) {
	if limit <= 0 {
		return 1
	}

	return int(math.Ceil(float64(total) / float64(limit)))
}

// TransformFields converts the set fields of a patch struct into a map of
// column name to value keyed by db tag. Nil pointer fields are absent from
// the request and are skipped; non-pointer fields are skipped when zero.
func TransformFields(data any, username string) map[string]any {
	val := reflect.ValueOf(data)
	typ := reflect.TypeOf(data)

	updatedFields := make(map[string]any)

	for index := range val.NumField() {
		fieldName := typ.Field(index).Tag.Get("db")
		if fieldName == "" || fieldName == "-" {
			continue
		}

		field := val.Field(index)

		if field.Kind() == reflect.Pointer {
			if field.IsNil() {
				continue
			}

			updatedFields[fieldName] = field.Elem().Interface()

			continue
		}

		if field.IsZero() {
			continue
		}

		updatedFields[fieldName] = field.Interface()
	}

	updatedFields[constant.FieldModifiedAt] = timezone.Now()
	updatedFields[constant.FieldModifiedBy] = username

	return updatedFields
}

// FilterByID builds the single-record filter used by get/update/delete.
func FilterByID(id, fieldID, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    fieldID,
				Value:    id,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}

// BuildCacheKey joins the prefix and parts into a redis key.
func BuildCacheKey(prefix string, parts ...string) string {
	if len(parts) == 0 {
		return prefix
	}

	return prefix + ":" + strings.Join(parts, ":")
}

// BuildCacheKeyWithQuery derives a stable cache key from the query shape so
// distinct page/limit/filter combinations cache independently.
func BuildCacheKeyWithQuery(prefix string, params dto.QueryParams, filter dto.FilterGroup) string {
	hasher := fnv.New64a()

	if encoded, err := json.Marshal(params); err == nil {
		_, _ = hasher.Write(encoded)
	}

	clause, args := filter.GetWhereClause()
	_, _ = hasher.Write([]byte(clause))

	if encoded, err := json.Marshal(args); err == nil {
		_, _ = hasher.Write(encoded)
	}

	return BuildCacheKey(prefix, fmt.Sprintf("%x", hasher.Sum64()))
}

// InvalidateCaches clears every cache entry under the given prefix.
func InvalidateCaches(ctx context.Context, redisCache cache.RedisCache, prefix string) {
	if err := redisCache.Clear(ctx, prefix+constant.Asterix); err != nil {
		log.Error().Err(err).Str("prefix", prefix).Msg("failed to invalidate caches")
	}
}

package productcontroller

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"gorm.io/gorm"

	"github.com/MEETT007/Shoe-App-Backend/apperr"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// sortColumns whitelists client-facing sort keys against real columns.
var sortColumns = map[string]string{
	"price":   "price",
	"rating":  "rating",
	"newest":  "created_at",
	"name":    "name",
	"created": "created_at",
}

// selectableFields whitelists columns for the fields= parameter.
var selectableFields = map[string]bool{
	"name": true, "slug": true, "brand": true, "category": true,
	"price": true, "discount_price": true, "images": true, "sizes": true,
	"colors": true, "gender": true, "rating": true, "created_at": true,
}

// ListParams are the parsed catalog browse/search filters:
// ?keyword=nike&gender=men&size=42&price[gte]=50&price[lte]=100&sort=-price
type ListParams struct {
	Keyword    string
	Gender     string
	Size       int
	MinPrice   *float64
	MaxPrice   *float64
	BestSeller *bool
	NewArrival *bool
	OnSale     *bool
	Sort       string // column key, optionally "-" prefixed for descending
	Fields     []string
	Page       int
	Limit      int
}

// ParseListParams validates the raw query string into ListParams.
func ParseListParams(query url.Values) (ListParams, error) {
	params := ListParams{
		Keyword: strings.TrimSpace(query.Get("keyword")),
		Gender:  strings.ToLower(query.Get("gender")),
		Sort:    query.Get("sort"),
		Page:    1,
		Limit:   defaultPageSize,
	}

	if v := query.Get("size"); v != "" {
		size, err := strconv.Atoi(v)
		if err != nil {
			return params, apperr.BadRequest("Invalid size")
		}
		params.Size = size
	}

	for param, dst := range map[string]**float64{
		"price[gte]": &params.MinPrice,
		"price[lte]": &params.MaxPrice,
	} {
		if v := query.Get(param); v != "" {
			price, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return params, apperr.BadRequest("Invalid " + param)
			}
			*dst = &price
		}
	}

	for param, dst := range map[string]**bool{
		"bestseller": &params.BestSeller,
		"newarrival": &params.NewArrival,
		"onsale":     &params.OnSale,
	} {
		if v := query.Get(param); v != "" {
			flag, err := strconv.ParseBool(v)
			if err != nil {
				return params, apperr.BadRequest("Invalid " + param)
			}
			*dst = &flag
		}
	}

	if v := query.Get("fields"); v != "" {
		for _, field := range strings.Split(v, ",") {
			field = strings.TrimSpace(field)
			if selectableFields[field] {
				params.Fields = append(params.Fields, field)
			}
		}
	}

	if v := query.Get("page"); v != "" {
		page, err := strconv.Atoi(v)
		if err != nil || page < 1 {
			return params, apperr.BadRequest("Invalid page")
		}
		params.Page = page
	}
	if v := query.Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil || limit < 1 {
			return params, apperr.BadRequest("Invalid limit")
		}
		if limit > maxPageSize {
			limit = maxPageSize
		}
		params.Limit = limit
	}

	if params.Sort != "" {
		key := strings.TrimPrefix(params.Sort, "-")
		if _, ok := sortColumns[key]; !ok {
			return params, apperr.BadRequest("Invalid sort field")
		}
	}
	return params, nil
}

// OrderClause maps the sort key to a SQL order expression, defaulting to
// newest first.
func (p ListParams) OrderClause() string {
	if p.Sort == "" {
		return "created_at DESC"
	}
	key := strings.TrimPrefix(p.Sort, "-")
	column := sortColumns[key]
	if strings.HasPrefix(p.Sort, "-") {
		return column + " DESC"
	}
	return column + " ASC"
}

// Apply attaches the filters to a catalog query. The caller supplies the
// store-scoped base query so the soft-delete predicate is already present.
func (p ListParams) Apply(query *gorm.DB) *gorm.DB {
	if p.Keyword != "" {
		like := "%" + p.Keyword + "%"
		query = query.Where("name ILIKE ? OR brand ILIKE ? OR description ILIKE ?", like, like, like)
	}
	if p.Gender != "" {
		query = query.Where("gender = ?", p.Gender)
	}
	if p.Size != 0 {
		// Sizes is a JSON array column; containment matches a single size.
		query = query.Where("sizes::jsonb @> ?", fmt.Sprintf("[%d]", p.Size))
	}
	if p.MinPrice != nil {
		query = query.Where("price >= ?", *p.MinPrice)
	}
	if p.MaxPrice != nil {
		query = query.Where("price <= ?", *p.MaxPrice)
	}
	if p.BestSeller != nil {
		query = query.Where("is_best_seller = ?", *p.BestSeller)
	}
	if p.NewArrival != nil {
		query = query.Where("is_new_arrival = ?", *p.NewArrival)
	}
	if p.OnSale != nil {
		query = query.Where("is_on_sale = ?", *p.OnSale)
	}
	if len(p.Fields) > 0 {
		query = query.Select(append([]string{"id"}, p.Fields...))
	}
	return query.Order(p.OrderClause()).
		Offset((p.Page - 1) * p.Limit).
		Limit(p.Limit)
}

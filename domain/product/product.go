package product

import (
	"strings"

	"layerit/domain/shared"
	"layerit/domain/skin"
)

// keyIngredientCount 产品卡片上展示的成分数量
const keyIngredientCount = 4

// Product 产品值对象
// 从静态数据集加载一次，之后不可变；所有切片访问器返回副本
type Product struct {
	id          int
	name        string
	brand       string
	description string
	ingredients []string
	skinTypes   []skin.Type
}

// NewProduct validates and builds a Product.
func NewProduct(id int, name, brand, description string, ingredients []string, skinTypes []skin.Type) (Product, error) {
	if id <= 0 {
		return Product{}, shared.NewValidationError("product", "id", "product id must be positive")
	}
	if strings.TrimSpace(name) == "" {
		return Product{}, shared.NewValidationError("product", "name", "product name cannot be empty")
	}
	for _, st := range skinTypes {
		if !st.IsValid() {
			return Product{}, shared.NewValidationError("product", "skin_types", "unknown skin type: "+string(st))
		}
	}

	return Product{
		id:          id,
		name:        name,
		brand:       brand,
		description: description,
		ingredients: append([]string(nil), ingredients...),
		skinTypes:   append([]skin.Type(nil), skinTypes...),
	}, nil
}

func (p Product) ID() int             { return p.id }
func (p Product) Name() string        { return p.name }
func (p Product) Brand() string       { return p.brand }
func (p Product) Description() string { return p.description }

func (p Product) Ingredients() []string {
	return append([]string(nil), p.ingredients...)
}

func (p Product) SkinTypes() []skin.Type {
	return append([]skin.Type(nil), p.skinTypes...)
}

// KeyIngredients returns the first four ingredients and whether more were cut off.
func (p Product) KeyIngredients() ([]string, bool) {
	if len(p.ingredients) <= keyIngredientCount {
		return p.Ingredients(), false
	}
	return append([]string(nil), p.ingredients[:keyIngredientCount]...), true
}

// HasIngredient matches case-insensitively.
func (p Product) HasIngredient(name string) bool {
	for _, ing := range p.ingredients {
		if strings.EqualFold(ing, name) {
			return true
		}
	}
	return false
}

func (p Product) SuitsSkinType(t skin.Type) bool {
	for _, st := range p.skinTypes {
		if st == t {
			return true
		}
	}
	return false
}

// Equals 按标识比较
func (p Product) Equals(other Product) bool {
	return p.id == other.id
}

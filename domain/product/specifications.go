package product

import (
	"context"
	"strings"

	"layerit/domain/shared"
	"layerit/domain/skin"
)

type BySkinTypeSpecification struct {
	SkinType skin.Type
}

func (spec BySkinTypeSpecification) IsSatisfiedBy(ctx context.Context, p Product) bool {
	return p.SuitsSkinType(spec.SkinType)
}

type ContainsIngredientSpecification struct {
	Ingredient string
}

func (spec ContainsIngredientSpecification) IsSatisfiedBy(ctx context.Context, p Product) bool {
	return p.HasIngredient(spec.Ingredient)
}

type ByBrandSpecification struct {
	Brand string
}

func (spec ByBrandSpecification) IsSatisfiedBy(ctx context.Context, p Product) bool {
	return strings.EqualFold(p.Brand(), spec.Brand)
}

func NewBySkinTypeSpecification(t skin.Type) shared.Specification[Product] {
	return BySkinTypeSpecification{SkinType: t}
}

func NewContainsIngredientSpecification(ingredient string) shared.Specification[Product] {
	return ContainsIngredientSpecification{Ingredient: ingredient}
}

func NewByBrandSpecification(brand string) shared.Specification[Product] {
	return ByBrandSpecification{Brand: brand}
}

// Package memory 提供进程内的存储实现：只读商品目录和会话状态 KV
package memory

import (
	"context"

	"layerit/domain/product"
	"layerit/domain/shared"
)

// ProductRepository 只读商品仓储，保持数据集顺序
type ProductRepository struct {
	products []product.Product
	byID     map[int]int
}

// NewProductRepository 由已加载的商品构造仓储，重复 id 返回错误
func NewProductRepository(products []product.Product) (*ProductRepository, error) {
	repo := &ProductRepository{
		products: make([]product.Product, 0, len(products)),
		byID:     make(map[int]int, len(products)),
	}
	for _, p := range products {
		if _, ok := repo.byID[p.ID()]; ok {
			return nil, product.NewDuplicateIDError(p.ID())
		}
		repo.byID[p.ID()] = len(repo.products)
		repo.products = append(repo.products, p)
	}
	return repo, nil
}

func (r *ProductRepository) FindByID(ctx context.Context, id int) (product.Product, error) {
	idx, ok := r.byID[id]
	if !ok {
		return product.Product{}, product.NewProductNotFoundError(id)
	}
	return r.products[idx], nil
}

func (r *ProductRepository) List(ctx context.Context) ([]product.Product, error) {
	return append([]product.Product(nil), r.products...), nil
}

func (r *ProductRepository) FindBySpecification(ctx context.Context, spec shared.Specification[product.Product]) ([]product.Product, error) {
	if spec == nil {
		return r.List(ctx)
	}
	result := make([]product.Product, 0)
	for _, p := range r.products {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if spec.IsSatisfiedBy(ctx, p) {
			result = append(result, p)
		}
	}
	return result, nil
}

// Count 商品数量，用于健康检查
func (r *ProductRepository) Count() int {
	return len(r.products)
}

var _ product.Repository = (*ProductRepository)(nil)

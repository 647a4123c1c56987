package services

import (
	"context"
	"math"

	"fudge-kettle/models"
)

type ProductService struct {
	products ProductCatalog
}

func NewProductService(products ProductCatalog) *ProductService {
	return &ProductService{products: products}
}

func (s *ProductService) List(ctx context.Context, flavor string, featured *bool, page, limit int) (*models.PaginationResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}

	products, total, err := s.products.List(ctx, flavor, featured, page, limit)
	if err != nil {
		return nil, err
	}

	return &models.PaginationResponse{
		Success: true,
		Message: "Products retrieved successfully",
		Data:    products,
		Meta: models.PaginationMeta{
			Page:       page,
			Limit:      limit,
			TotalItems: total,
			TotalPages: int(math.Ceil(float64(total) / float64(limit))),
		},
	}, nil
}

func (s *ProductService) GetByID(ctx context.Context, id int) (*models.Product, error) {
	return s.products.GetByID(ctx, id)
}

func (s *ProductService) Create(ctx context.Context, req models.CreateProductRequest) (*models.Product, error) {
	product := &models.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Featured:    req.Featured,
		Stock:       req.Stock,
	}
	if req.Flavor != "" {
		flavor := req.Flavor
		product.Flavor = &flavor
	}

	if err := s.products.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *ProductService) Update(ctx context.Context, id int, req models.UpdateProductRequest) (*models.Product, error) {
	product, err := s.products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.Featured != nil {
		product.Featured = *req.Featured
	}
	if req.Flavor != nil {
		if *req.Flavor == "" {
			product.Flavor = nil
		} else {
			product.Flavor = req.Flavor
		}
	}
	if req.Stock != nil {
		product.Stock = *req.Stock
	}

	if err := s.products.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *ProductService) SetImage(ctx context.Context, id int, imageURL string) error {
	return s.products.SetImage(ctx, id, imageURL)
}

func (s *ProductService) Delete(ctx context.Context, id int) error {
	return s.products.Delete(ctx, id)
}

package masterdata

import (
	"context"

	"github.com/backoffice/backend/internal/application"
	"github.com/backoffice/backend/internal/domain/masterdata"
	"github.com/backoffice/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductService handles product master data operations
type ProductService struct {
	products masterdata.ProductRepository
}

// NewProductService creates a new ProductService
func NewProductService(products masterdata.ProductRepository) *ProductService {
	return &ProductService{products: products}
}

// Create creates a new product
func (s *ProductService) Create(ctx context.Context, req CreateProductRequest) (*ProductResponse, error) {
	if err := application.ValidateStruct(req); err != nil {
		return nil, err
	}

	price := decimal.Zero
	if req.DefaultPrice != nil {
		price = *req.DefaultPrice
	}
	product, err := masterdata.NewProduct(req.SKU, req.Name, price)
	if err != nil {
		return nil, err
	}

	taken, err := s.products.ExistsBySKU(ctx, product.SKU)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, shared.NewConflictError("DUPLICATE_SKU", "Product SKU already exists")
	}

	if req.Description != "" {
		product.SetDescription(req.Description)
	}
	if req.UOM != "" {
		if err := product.SetUOM(req.UOM); err != nil {
			return nil, err
		}
	}

	if err := s.products.Save(ctx, product); err != nil {
		return nil, err
	}

	response := ToProductResponse(product)
	return &response, nil
}

// GetByID retrieves a product by ID
func (s *ProductService) GetByID(ctx context.Context, id uuid.UUID) (*ProductResponse, error) {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToProductResponse(product)
	return &response, nil
}

// GetBySKU retrieves a product by its unique SKU
func (s *ProductService) GetBySKU(ctx context.Context, sku string) (*ProductResponse, error) {
	product, err := s.products.FindBySKU(ctx, sku)
	if err != nil {
		return nil, err
	}
	response := ToProductResponse(product)
	return &response, nil
}

// List retrieves all products ordered by SKU
func (s *ProductService) List(ctx context.Context) ([]ProductResponse, error) {
	filter := shared.Filter{
		OrderBy:  "sku",
		OrderDir: "asc",
		Filters:  make(map[string]interface{}),
	}
	products, err := s.products.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	return ToProductResponses(products), nil
}

// Update applies a partial update to a product
func (s *ProductService) Update(ctx context.Context, id uuid.UUID, req UpdateProductRequest) (*ProductResponse, error) {
	if err := application.ValidateStruct(req); err != nil {
		return nil, err
	}

	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.SKU != nil && *req.SKU != product.SKU {
		if err := product.ChangeSKU(*req.SKU); err != nil {
			return nil, err
		}
		taken, err := s.products.ExistsBySKU(ctx, product.SKU)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, shared.NewConflictError("DUPLICATE_SKU", "Product SKU already exists")
		}
	}
	if req.Name != nil {
		if err := product.Rename(*req.Name); err != nil {
			return nil, err
		}
	}
	if req.Description != nil {
		product.SetDescription(*req.Description)
	}
	if req.UOM != nil {
		if err := product.SetUOM(*req.UOM); err != nil {
			return nil, err
		}
	}
	if req.DefaultPrice != nil {
		if err := product.ChangeDefaultPrice(*req.DefaultPrice); err != nil {
			return nil, err
		}
	}

	if err := s.products.Save(ctx, product); err != nil {
		return nil, err
	}

	response := ToProductResponse(product)
	return &response, nil
}

// Delete deletes a product. Document lines keep their history: the
// repository nulls their product reference instead of blocking.
func (s *ProductService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.products.FindByID(ctx, id); err != nil {
		return err
	}
	return s.products.Delete(ctx, id)
}

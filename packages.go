package tebex

import (
	"context"
	"net/http"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tebexkit/client-go/internal/api"
)

// Packages is the packages data API.
type Packages struct {
	api *api.Client
}

// Package is a package sold on the webstore.
type Package struct {
	ID                int             `json:"id"`
	Name              string          `json:"name"`
	Image             string          `json:"image"`
	Price             decimal.Decimal `json:"price"`
	ExpiryLength      int             `json:"expiryLength"`
	ExpiryPeriod      string          `json:"expiryPeriod"`
	Type              string          `json:"type"`
	Category          PackageCategory `json:"category"`
	GlobalLimit       int             `json:"globalLimit"`
	GlobalLimitPeriod string          `json:"globalLimitPeriod"`
	UserLimit         int             `json:"userLimit"`
	UserLimitPeriod   string          `json:"userLimitPeriod"`
	Servers           []SimplePackage `json:"servers"`
	RequiredPackages  []int           `json:"requiredPackages"`
	RequireAny        bool            `json:"requireAny"`
	CreateGiftcard    bool            `json:"createGiftcard"`
	// ShowUntil is zero when the package is shown indefinitely.
	ShowUntil        time.Time `json:"showUntil"`
	GUIItem          string    `json:"guiItem"`
	Disabled         bool      `json:"disabled"`
	DisableQuantity  bool      `json:"disableQuantity"`
	CustomPrice      bool      `json:"customPrice"`
	ChooseServer     bool      `json:"chooseServer"`
	LimitExpires     bool      `json:"limitExpires"`
	InheritCommands  bool      `json:"inheritCommands"`
	VariableGiftcard bool      `json:"variableGiftcard"`
}

// PackageCategory is the category a package belongs to.
type PackageCategory struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Listing is the in-game listing of categories and packages.
type Listing struct {
	Categories []ListingCategory `json:"categories"`
}

// ListingCategory is a category of the listing. Subcategories and packages
// are sorted by Order.
type ListingCategory struct {
	ID                int               `json:"id"`
	Order             int               `json:"order"`
	Name              string            `json:"name"`
	OnlySubcategories bool              `json:"onlySubcategories"`
	GUIItem           string            `json:"guiItem"`
	Subcategories     []ListingCategory `json:"subcategories"`
	Packages          []ListingPackage  `json:"packages"`
}

// ListingPackage is a package of the listing.
type ListingPackage struct {
	ID      int             `json:"id"`
	Order   int             `json:"order"`
	Name    string          `json:"name"`
	Price   decimal.Decimal `json:"price"`
	Image   string          `json:"image"`
	GUIItem string          `json:"guiItem"`
	Sale    ListingSale     `json:"sale"`
	// DiscountedPrice is Price reduced by Sale.Discount while the sale is
	// active, and Price otherwise.
	DiscountedPrice decimal.Decimal `json:"discountedPrice"`
}

// ListingSale is the sale state of a listed package.
type ListingSale struct {
	Active   bool            `json:"active"`
	Discount decimal.Decimal `json:"discount"`
}

// UpdatePackageParams holds the fields of a package update. Zero values are
// left out of the request.
type UpdatePackageParams struct {
	Disabled *bool
	Name     string
	Price    *decimal.Decimal
}

// All returns every package on the webstore.
func (p *Packages) All(ctx context.Context) ([]Package, error) {
	return api.Execute(ctx, p.api, api.Request{Path: api.Packages.Path()}, list(shapePackage))
}

// Retrieve returns the package with the given id.
func (p *Packages) Retrieve(ctx context.Context, id int) (*Package, error) {
	if err := requireID("package id", id); err != nil {
		return nil, err
	}
	pkg, err := api.Execute(ctx, p.api, api.Request{Path: api.Package.Path(id)}, single(shapePackage))
	if err != nil {
		return nil, err
	}
	return &pkg, nil
}

// Listing returns the categories and packages that should be displayed to
// players in game, ordered for display, with sale prices applied.
func (p *Packages) Listing(ctx context.Context) (*Listing, error) {
	listing, err := api.Execute(ctx, p.api, api.Request{Path: api.Listing.Path()}, single(shapeListing))
	if err != nil {
		return nil, err
	}
	return &listing, nil
}

// Update changes a package's name, price or disabled state.
func (p *Packages) Update(ctx context.Context, id int, params UpdatePackageParams) error {
	if err := requireID("package id", id); err != nil {
		return err
	}
	_, err := api.Execute(ctx, p.api, api.Request{
		Method: http.MethodPut,
		Path:   api.UpdatePackage.Path(id),
		Body: api.UpdatePackageRequest{
			Disabled: params.Disabled,
			Name:     params.Name,
			Price:    params.Price,
		},
	}, api.Discard)
	return err
}

func shapePackage(w api.PackageDTO) Package {
	return Package{
		ID:                int(w.ID),
		Name:              w.Name,
		Image:             string(w.Image),
		Price:             w.Price.Decimal,
		ExpiryLength:      int(w.ExpiryLength),
		ExpiryPeriod:      w.ExpiryPeriod,
		Type:              w.Type,
		Category:          PackageCategory{ID: int(w.Category.ID), Name: w.Category.Name},
		GlobalLimit:       int(w.GlobalLimit),
		GlobalLimitPeriod: w.GlobalLimitPeriod,
		UserLimit:         int(w.UserLimit),
		UserLimitPeriod:   w.UserLimitPeriod,
		Servers:           mapSlice(w.Servers, shapeRef),
		RequiredPackages:  ints(w.RequiredPackages),
		RequireAny:        bool(w.RequireAny),
		CreateGiftcard:    bool(w.CreateGiftcard),
		ShowUntil:         w.ShowUntil.Time,
		GUIItem:           string(w.GUIItem),
		Disabled:          bool(w.Disabled),
		DisableQuantity:   bool(w.DisableQuantity),
		CustomPrice:       bool(w.CustomPrice),
		ChooseServer:      bool(w.ChooseServer),
		LimitExpires:      bool(w.LimitExpires),
		InheritCommands:   bool(w.InheritCommands),
		VariableGiftcard:  bool(w.VariableGiftcard),
	}
}

func shapeListing(w api.ListingDTO) Listing {
	return Listing{Categories: shapeListingCategories(w.Categories)}
}

func shapeListingCategories(in []api.ListingCategoryDTO) []ListingCategory {
	out := mapSlice(in, shapeListingCategory)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out
}

func shapeListingCategory(w api.ListingCategoryDTO) ListingCategory {
	pkgs := mapSlice(w.Packages, shapeListingPackage)
	sort.SliceStable(pkgs, func(i, j int) bool { return pkgs[i].Order < pkgs[j].Order })

	return ListingCategory{
		ID:                int(w.ID),
		Order:             int(w.Order),
		Name:              w.Name,
		OnlySubcategories: bool(w.OnlySubcategories),
		GUIItem:           string(w.GUIItem),
		Subcategories:     shapeListingCategories(w.Subcategories),
		Packages:          pkgs,
	}
}

func shapeListingPackage(w api.ListingPackageDTO) ListingPackage {
	sale := ListingSale{Active: bool(w.Sale.Active), Discount: w.Sale.Discount.Decimal}
	return ListingPackage{
		ID:              int(w.ID),
		Order:           int(w.Order),
		Name:            w.Name,
		Price:           w.Price.Decimal,
		Image:           string(w.Image),
		GUIItem:         string(w.GUIItem),
		Sale:            sale,
		DiscountedPrice: discountedPrice(w.Price.Decimal, sale),
	}
}

func discountedPrice(price decimal.Decimal, sale ListingSale) decimal.Decimal {
	if !sale.Active {
		return price
	}
	return price.Sub(sale.Discount)
}

package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/draperhq/storefront-api/internal/domain/entity"
)

// Wire shapes for every resource. Handlers never serialize entities
// directly; like userView, each view emits snake_case keys.

func productView(p *entity.Product) gin.H {
	return gin.H{
		"id":          p.ID,
		"name":        p.Name,
		"description": p.Description,
		"price_cents": p.PriceCents,
		"images":      p.Images,
		"category":    p.Category,
		"stock":       p.Stock,
		"in_stock":    p.InStock,
		"created_at":  p.CreatedAt,
		"updated_at":  p.UpdatedAt,
	}
}

func productViews(ps []entity.Product) []gin.H {
	out := make([]gin.H, 0, len(ps))
	for i := range ps {
		out = append(out, productView(&ps[i]))
	}
	return out
}

func cartView(ct *entity.Cart) gin.H {
	items := make([]gin.H, 0, len(ct.Items))
	for _, it := range ct.Items {
		items = append(items, gin.H{
			"product_id":       it.ProductID,
			"product_name":     it.ProductName,
			"product_image":    it.ProductImage,
			"unit_price_cents": it.UnitPriceCents,
			"stock":            it.Stock,
			"quantity":         it.Quantity,
			"added_at":         it.AddedAt,
		})
	}
	return gin.H{
		"id":         ct.ID,
		"user_id":    ct.UserID,
		"items":      items,
		"created_at": ct.CreatedAt,
		"updated_at": ct.UpdatedAt,
	}
}

func orderView(o *entity.Order) gin.H {
	items := make([]gin.H, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, gin.H{
			"product_id":       it.ProductID,
			"product_name":     it.ProductName,
			"quantity":         it.Quantity,
			"unit_price_cents": it.UnitPriceCents,
		})
	}
	return gin.H{
		"id":      o.ID,
		"user_id": o.UserID,
		"items":   items,
		"shipping": gin.H{
			"street":      o.Shipping.Street,
			"city":        o.Shipping.City,
			"postal_code": o.Shipping.PostalCode,
			"country":     o.Shipping.Country,
			"phone":       o.Shipping.Phone,
		},
		"payment_method": o.PaymentMethod,
		"total_cents":    o.TotalCents,
		"confirmed":      o.Confirmed,
		"created_at":     o.CreatedAt,
	}
}

func orderViews(list []entity.Order) []gin.H {
	out := make([]gin.H, 0, len(list))
	for i := range list {
		out = append(out, orderView(&list[i]))
	}
	return out
}

func storeView(s *entity.Store) gin.H {
	return gin.H{
		"id":            s.ID,
		"name":          s.Name,
		"street":        s.Street,
		"city":          s.City,
		"country":       s.Country,
		"phone":         s.Phone,
		"latitude":      s.Latitude,
		"longitude":     s.Longitude,
		"opening_hours": s.OpeningHours,
		"created_at":    s.CreatedAt,
		"updated_at":    s.UpdatedAt,
	}
}

func storeViews(list []entity.Store) []gin.H {
	out := make([]gin.H, 0, len(list))
	for i := range list {
		out = append(out, storeView(&list[i]))
	}
	return out
}

func contactView(m *entity.ContactMessage) gin.H {
	return gin.H{
		"id":         m.ID,
		"name":       m.Name,
		"email":      m.Email,
		"subject":    m.Subject,
		"message":    m.Message,
		"created_at": m.CreatedAt,
	}
}

func contactViews(list []entity.ContactMessage) []gin.H {
	out := make([]gin.H, 0, len(list))
	for i := range list {
		out = append(out, contactView(&list[i]))
	}
	return out
}

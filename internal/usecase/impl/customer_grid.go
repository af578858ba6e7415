package impl

import (
	"traiteur/internal/domain/entity"
	"traiteur/internal/domain/grid"
)

// customerGridSchema exposes customer columns to grid filters and sorts under
// the names used by the grid's JSON rows.
var customerGridSchema = grid.Schema[*entity.Customer]{
	"id":           {Kind: grid.KindNumber, Get: func(c *entity.Customer) any { return c.ID }},
	"name":         {Kind: grid.KindString, Get: func(c *entity.Customer) any { return c.Name }},
	"info":         {Kind: grid.KindString, Get: func(c *entity.Customer) any { return c.Info }},
	"emailAddress": {Kind: grid.KindString, Get: func(c *entity.Customer) any { return c.EmailAddress }},
	"rating":       {Kind: grid.KindString, Get: func(c *entity.Customer) any { return string(c.Rating) }},
	"companyName":  {Kind: grid.KindString, Get: func(c *entity.Customer) any { return c.CompanyName }},
	"vatNumber":    {Kind: grid.KindString, Get: func(c *entity.Customer) any { return c.VATNumber }},
	"address":      {Kind: grid.KindString, Get: func(c *entity.Customer) any { return c.Address }},
	"identityAccountId": {Kind: grid.KindString, Get: func(c *entity.Customer) any {
		if c.IdentityAccountID == nil {
			return nil
		}

		return *c.IdentityAccountID
	}},
	"createdAt": {Kind: grid.KindNumber, Get: func(c *entity.Customer) any { return c.CreatedAt.UnixMilli() }},
}

// Package cart manages the shopping cart contents: an ordered list of lines
// keyed by product identity, persisted through a kv.Store after every
// mutation so the cart survives process restarts.
//
// The cart is independent of any product catalog and of the session: an
// anonymous user keeps a working cart.
//
//	store, _ := kv.NewFileStore(statePath)
//	manager := cart.New(store)
//	manager.Restore(ctx)
//
//	_ = manager.Add(ctx, cart.Item{ID: 1, Name: "Headphones", Price: 120, Quantity: 2})
//	manager.UpdateQuantity(ctx, 1, 3)
//
//	badge := manager.Count()        // sum of quantities
//	total := manager.TotalPrice()   // sum of price * quantity
//
// Adding a product that is already in the cart merges into the existing
// line by increasing its quantity. Driving a line's quantity to zero or
// below removes it; a non-positive quantity is never stored.
package cart

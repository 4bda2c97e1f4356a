// internal/defs/recipes.go
package defs

// Recipe defines the inputs and output for combining owned units. Materials
// form a multiset: duplicates matter, order does not. The result is either a
// fixed unit id or a named pool drawn from uniformly at random.
type Recipe struct {
	Materials  []string `json:"materials"`
	Result     string   `json:"result,omitempty"`
	ResultPool string   `json:"result_pool,omitempty"`
}

// UsesPool reports whether the recipe's result is drawn from a random pool.
func (r Recipe) UsesPool() bool {
	return r.ResultPool != ""
}

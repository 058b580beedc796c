/*
Package dsl provides a fluent Go builder for Turing machine definitions.

It is the programmatic alternative to JSON or YAML files, useful for tests,
generated machines and IDE-checked definitions.

Example usage:

	b := dsl.New("even-ones")
	b.Add("even").
		On('1', "odd", '1', domain.Right).
		On('_', "accept", '_', domain.Stay)
	b.Add("odd").
		On('1', "even", '1', domain.Right).
		On('_', "reject", '_', domain.Stay)
	b.Add("accept").Accept()
	b.Add("reject").Reject()

	def, err := b.Build()

The first added state is the initial one unless another calls Initial. The
tape alphabet is collected from the blank, any Symbols call and every symbol
the rules read or write.
*/
package dsl

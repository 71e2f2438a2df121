// Package unitz parses human-written quantities such as "1 1/2 cups",
// "2-3 tbsp" or "6oz, 1lb", converts them between units of the same class,
// and renders them back to text.
//
// Quantities are held as a Base: an ordered list of Ranges, each of which
// is a pair of Values. A Value keeps both a float and an exact num/den
// fraction so that "1/3 cup" survives round trips. Units live in Groups,
// Groups live in Classes (Length, Weight, ...) and Classes are registered
// in a Registry, which also synthesizes dynamic classes for unknown units
// like "loaf".
//
//	reg := unitz.NewRegistry()
//	reg.AddClasses(classes.All()...)
//	b := reg.Parse(unitz.Text("6oz, 1lb"))
//	fmt.Println(b.Compact(nil).Normalize(nil, nil).Output(nil)) // 22oz
package unitz

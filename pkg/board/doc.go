// Package board defines the AAC board: categories of image-backed items,
// the home/category cursor that drives selection, and the line-oriented
// text format boards are loaded from and saved to.
//
// A board has two levels. At home the selectable images are category
// covers; selecting one enters that category. Inside a category the
// selectable images are items, and selecting one returns the text to speak.
//
//	b, err := board.LoadFrom("board.txt")
//	if err != nil {
//		return err
//	}
//	_, _ = b.Select("img/food/plate.png")        // enter "food"
//	text, _ := b.Select("img/food/fries.png")    // "french fries"
//	b.Reset()                                    // back home
package board

package sqlite

// Schema DDL. Ordinals record insertion order so boards load in the order
// they were built.
const (
	createCategories = `CREATE TABLE IF NOT EXISTS categories (
    category_id TEXT PRIMARY KEY,
    image_loc TEXT NOT NULL UNIQUE,
    name TEXT NOT NULL,
    ordinal INTEGER NOT NULL
);`

	createItems = `CREATE TABLE IF NOT EXISTS items (
    item_id TEXT PRIMARY KEY,
    category_id TEXT NOT NULL,
    image_loc TEXT NOT NULL,
    text TEXT NOT NULL,
    ordinal INTEGER NOT NULL,
    UNIQUE (category_id, image_loc),
    FOREIGN KEY (category_id) REFERENCES categories(category_id) ON DELETE CASCADE
);`
)

// Index DDL.
const (
	idxCategoriesOrdinal = `CREATE INDEX IF NOT EXISTS idx_categories_ordinal ON categories(ordinal);`
	idxItemsCategory     = `CREATE INDEX IF NOT EXISTS idx_items_category ON items(category_id, ordinal);`
)

// schemaDDL lists all CREATE TABLE statements in dependency order.
var schemaDDL = []string{
	createCategories,
	createItems,
}

// indexDDL lists all CREATE INDEX statements.
var indexDDL = []string{
	idxCategoriesOrdinal,
	idxItemsCategory,
}

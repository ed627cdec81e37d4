package catalog

// Log messages
const (
	LogMsgCatalogAlreadySeeded = "Item catalog already seeded, skipping"
	LogMsgCatalogSeeded        = "Item catalog seeded"
	LogMsgCatalogLoaded        = "Item catalog loaded"
)

package domain

// KeyPrefix namespaces every key this service writes to the document store.
const KeyPrefix = "catalog:"

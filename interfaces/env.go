package interfaces

// Env is used to create a generated env mock
type Env interface {
	Get(key string) string
}

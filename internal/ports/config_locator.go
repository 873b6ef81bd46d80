package ports

// ConfigLocator finds the project root (the directory holding webpres.yaml)
// starting from an arbitrary directory.
type ConfigLocator interface {
	FindRoot(startDir string) (string, error)
}

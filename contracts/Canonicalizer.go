package contracts

type Canonicalizer interface {
	Clean(s string) string
	Canonicalize(s string) string
	Key(s string) string
	IsBlank(s string) bool
}

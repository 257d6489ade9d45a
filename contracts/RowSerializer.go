package contracts

type RowSerializer interface {
	Marshal(cells []string) ([]byte, error)
	Unmarshal([]byte) (cells []string, err error)
}

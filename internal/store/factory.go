package store

type Stores struct {
	db DBTX
}

func NewStores(db DBTX) *Stores {
	return &Stores{db: db}
}

func (s *Stores) GoldenExamples() GoldenExampleStore {
	return newGoldenExampleStore(s.db)
}

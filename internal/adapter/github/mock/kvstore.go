package mock

// KVStore mocks github.KVStore with an in-memory map.
type KVStore struct {
	Data    map[string][]byte
	Reads   int
	Updates int

	ReadErr   error
	UpdateErr error
}

// NewKVStore creates new KVStore instance with given data.
func NewKVStore(data map[string][]byte) *KVStore {
	if data == nil {
		data = make(map[string][]byte)
	}
	return &KVStore{Data: data}
}

// ReadKey returns data saved for given key.
func (s *KVStore) ReadKey(key []byte) ([]byte, error) {
	s.Reads++
	if s.ReadErr != nil {
		return nil, s.ReadErr
	}

	return s.Data[string(key)], nil
}

// UpdateKey stores given data under given key.
func (s *KVStore) UpdateKey(key []byte, data []byte) error {
	s.Updates++
	if s.UpdateErr != nil {
		return s.UpdateErr
	}
	s.Data[string(key)] = data

	return nil
}

package orm

import (
	unichan "github.com/unichan/unichan"
)

// queryPrefix returns all models with the given key prefix.
func queryPrefix(db unichan.ReadOnlyKVStore, prefix []byte) ([]unichan.Model, error) {
	start, end := prefixRange(prefix)
	itr, err := db.Iterator(start, end)
	if err != nil {
		return nil, err
	}
	return ConsumeIterator(itr)
}

// ConsumeIterator will read all remaining data into an
// array and close the iterator
func ConsumeIterator(itr unichan.Iterator) ([]unichan.Model, error) {
	defer itr.Close()

	res := []unichan.Model{}
	for itr.Valid() {
		mod := unichan.Model{
			Key:   itr.Key(),
			Value: itr.Value(),
		}
		res = append(res, mod)
		if err := itr.Next(); err != nil {
			return nil, err
		}
	}
	return res, nil
}

// prefixRange turns a prefix into (start, end) to create
// an iterator
func prefixRange(prefix []byte) ([]byte, []byte) {
	// special case: no prefix is whole range
	if len(prefix) == 0 {
		return nil, nil
	}

	// copy the prefix and update last byte
	end := make([]byte, len(prefix))
	copy(end, prefix)
	l := len(end) - 1
	end[l]++

	// wait, what if that overflowed the last byte?
	for end[l] == 0 && l > 0 {
		l--
		end[l]++
	}
	if l == 0 && end[0] == 0 {
		end = nil
	}
	return prefix, end
}

package hashtablemap

// NilKey - Custom error to inform that a nil key was supplied
type NilKey struct {
	msg string
}

// Error - Used to notify that a nil key was supplied
func (E NilKey) Error() string {
	if E.msg == "" {
		return "nil key not allowed"
	}
	return E.msg
}

// DuplicateKey - Custom error to inform that the key is already present in the hash map
type DuplicateKey struct {
	msg string
}

// Error - Used to notify that the key is already present
func (E DuplicateKey) Error() string {
	if E.msg == "" {
		return "key already present"
	}
	return E.msg
}

// KeyNotFound - Custom error to inform that no entry with a matching key was found
type KeyNotFound struct {
	msg string
}

// Error - Used to notify that no entry with a matching key was found
func (E KeyNotFound) Error() string {
	if E.msg == "" {
		return "key not found"
	}
	return E.msg
}

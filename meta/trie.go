package meta

// Prefix tree over key strokes (motions) or characters (commands).
type Trie[T any] struct {
	key string

	isLeaf bool
	value  T

	children []*Trie[T]
}

func (t *Trie[T]) child(key string) (*Trie[T], bool) {
	for _, child := range t.children {
		if child.key == key {
			return child, true
		}
	}

	return nil, false
}

// Walks the trie along path, returning the node at the end of it.
func (t *Trie[T]) walk(path []string) (*Trie[T], bool) {
	node := t

	for _, key := range path {
		next, ok := node.child(key)
		if !ok {
			return nil, false
		}

		node = next
	}

	return node, true
}

func (t *Trie[T]) Get(path []string) (T, bool) {
	var null T

	if len(path) == 0 {
		return null, false
	}

	node, ok := t.walk(path)
	if !ok || !node.isLeaf {
		return null, false
	}

	return node.value, true
}

// Whether path is a (not necessarily complete) prefix of some stored path.
func (t *Trie[T]) ContainsPath(path []string) bool {
	_, ok := t.walk(path)

	return ok
}

// Completes path by following the first child until a leaf is reached.
// Returns nil if path isn't in the trie.
func (t *Trie[T]) Autocompletion(path []string) []string {
	node, ok := t.walk(path)
	if !ok {
		return nil
	}

	result := append([]string{}, path...)

	for !node.isLeaf && len(node.children) > 0 {
		node = node.children[0]
		result = append(result, node.key)
	}

	return result
}

// Inserts value at path. An existing leaf keeps its original value.
func (t *Trie[T]) Insert(path []string, value T) (changed bool) {
	node := t

	for i, key := range path {
		isFinalKey := i == len(path)-1

		if next, ok := node.child(key); ok {
			node = next

			if isFinalKey && !node.isLeaf {
				node.isLeaf = true
				node.value = value
				changed = true
			}

			continue
		}

		newChild := &Trie[T]{key: key, isLeaf: isFinalKey}
		if isFinalKey {
			newChild.value = value
		}

		node.children = append(node.children, newChild)
		node = newChild
		changed = true
	}

	return changed
}

package community

import "slices"

// Approve publishes a held post and returns it.
func (b *Board) Approve(id string) (Post, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	i := b.heldIndex(id)
	if i < 0 {
		return Post{}, ErrPostNotFound
	}
	b.posts[i].IsModerated = true
	return b.posts[i].clone(), nil
}

// Reject removes a held post from the board.
func (b *Board) Reject(id string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	i := b.heldIndex(id)
	if i < 0 {
		return ErrPostNotFound
	}
	b.posts = slices.Delete(b.posts, i, i+1)
	return nil
}

// heldIndex returns the index of the unpublished post with id, or -1.
// Callers hold b.mu.
func (b *Board) heldIndex(id string) int {
	for i, p := range b.posts {
		if p.ID == id && !p.IsModerated {
			return i
		}
	}
	return -1
}

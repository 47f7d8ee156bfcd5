// Package feed implements the user/post records used by the ownership and
// performance demonstrations.
//
// A user's post IDs are unsigned and appended in increasing order by the
// calling pattern (every new post ID is the maximum so far), which keeps
// the sequence sorted and makes membership a binary search. The search
// does not verify sortedness; a caller that violates the append-only
// pattern gets wrong answers, not crashes.
package feed

// User holds an identifier, two display strings, and the user's post IDs.
type User struct {
	ID    uint32
	Name  string
	Email string

	posts    []uint32
	lastPost uint32
	hasPosts bool
}

// NewUser returns a user with no posts.
func NewUser(id uint32, name, email string) *User {
	return &User{ID: id, Name: name, Email: email}
}

// AddPost appends a post ID. Callers append IDs in increasing order.
func (u *User) AddPost(postID uint32) {
	u.posts = append(u.posts, postID)
	u.lastPost = postID
	u.hasPosts = true
}

// ContainsPost reports whether postID is among the user's posts, by binary
// search over the sorted sequence. Empty sequence, below-minimum and
// above-maximum queries all resolve to false in O(log n) comparisons.
func (u *User) ContainsPost(postID uint32) bool {
	lo, hi := 0, len(u.posts)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		switch {
		case u.posts[mid] == postID:
			return true
		case u.posts[mid] < postID:
			lo = mid + 1
		default:
			hi = mid
		}
	}
	return false
}

// Posts returns the post IDs without copying. Callers must not mutate the
// returned slice.
func (u *User) Posts() []uint32 { return u.posts }

// LastPost returns the most recently added post ID, or false if the user
// has no posts.
func (u *User) LastPost() (uint32, bool) {
	return u.lastPost, u.hasPosts
}

// containsLinear is the O(n) oracle the tests cross-check ContainsPost
// against. It makes no ordering assumption.
func containsLinear(posts []uint32, postID uint32) bool {
	for _, p := range posts {
		if p == postID {
			return true
		}
	}
	return false
}

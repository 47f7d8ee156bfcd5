package lab

import (
	"context"
	"fmt"
	"io"

	"github.com/kolkov/golab/internal/feed"
)

func init() {
	register(Demo{
		Name:    "aliasing-shared",
		Topic:   TopicOwnership,
		Variant: Buggy,
		Summary: "slices sharing a backing array: a write through one alias clobbers the other",
		Run:     runAliasingShared,
	})
	register(Demo{
		Name:    "ownership-copy",
		Topic:   TopicOwnership,
		Variant: Fixed,
		Summary: "explicit copies and documented borrow rules for shared data",
		Run:     runOwnershipCopy,
	})
}

// runAliasingShared shows the Go version of an ownership bug: two slice
// headers over one backing array, where mutation through either alias is
// visible through both, and an append that silently overwrites a sibling.
func runAliasingShared(_ context.Context, out io.Writer) error {
	fmt.Fprintln(out, "=== Aliased Slices (BUGGY) ===")
	fmt.Fprintln(out)

	posts := []uint32{101, 102, 103, 104}
	mine := posts[:2] // BUG: same backing array, no copy

	fmt.Fprintf(out, "posts: %v\n", posts)
	fmt.Fprintf(out, "mine:  %v (aliases posts)\n", mine)

	mine[0] = 999 // writes through to posts
	fmt.Fprintf(out, "after mine[0] = 999, posts: %v\n", posts)

	// Appending within capacity clobbers posts[2].
	mine = append(mine, 888)
	fmt.Fprintf(out, "after append(mine, 888), posts: %v\n", posts)

	if posts[0] == 999 && posts[2] == 888 {
		fmt.Fprintln(out, "✗ both writes leaked through the alias")
	}

	// The mirror-image bug: a value receiver mutates a copy, so the
	// "update" silently vanishes.
	fmt.Fprintln(out)
	u := feed.NewUser(1, "Alice", "alice@example.com")
	rename(*u, "Bob") // BUG: passes a copy; the original is untouched
	fmt.Fprintf(out, "after rename-by-value, name is still %q\n", u.Name)
	if u.Name == "Alice" {
		fmt.Fprintln(out, "✗ the mutation landed on a copy and was discarded")
	}
	return nil
}

// rename takes its receiver-style argument by value on purpose; the
// corrected variant mutates through the pointer the constructor returned.
func rename(u feed.User, name string) {
	u.Name = name
}

// runOwnershipCopy is the corrected variant: reads borrow, mutations own.
// The feed.User API returns its posts slice as a documented read-only
// borrow; callers that need to mutate take an explicit copy first.
func runOwnershipCopy(_ context.Context, out io.Writer) error {
	fmt.Fprintln(out, "=== Explicit Copies and Borrows ===")
	fmt.Fprintln(out)

	alice := feed.NewUser(1, "Alice", "alice@example.com")
	alice.AddPost(101)
	alice.AddPost(102)
	alice.AddPost(103)

	// Read through the borrow: cheap, no allocation.
	borrowed := alice.Posts()
	fmt.Fprintf(out, "%s has %d posts: %v (borrowed, read-only)\n",
		alice.Name, len(borrowed), borrowed)

	// Mutations get their own copy.
	owned := make([]uint32, len(borrowed))
	copy(owned, borrowed)
	owned[0] = 999
	fmt.Fprintf(out, "mutated copy: %v\n", owned)
	fmt.Fprintf(out, "original:     %v (unchanged)\n", alice.Posts())

	// Updates go through the pointer the constructor returned, so they
	// persist; the user remains usable after every read.
	alice.Name = "Alice Liddell"
	alice.AddPost(104)
	if last, ok := alice.LastPost(); ok {
		fmt.Fprintf(out, "%s's latest post: %d\n", alice.Name, last)
	}

	if alice.Posts()[0] == 101 {
		fmt.Fprintln(out, "✓ the copy isolated the mutation")
	}
	return nil
}

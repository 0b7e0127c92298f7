package scan

import "testing"

// FuzzIndexByte checks P5: the dispatched kernel must agree with the
// scalar reference on every input, regardless of which vector
// implementation the running CPU selected at init.
func FuzzIndexByte(f *testing.F) {
	f.Add([]byte(""), byte(' '))
	f.Add([]byte("@badges=;room-id=1 :a!a@a PRIVMSG #a :hi"), byte(' '))
	f.Add([]byte("0123456789abcdef0123456789abcdef"), byte('f'))
	f.Fuzz(func(t *testing.T, b []byte, c byte) {
		want := indexByteScalar(b, c)
		got := IndexByte(b, c)
		if want != got {
			t.Fatalf("IndexByte(%q, %q) = %d, want %d (scalar)", b, c, got, want)
		}
	})
}

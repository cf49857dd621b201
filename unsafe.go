package inlinestr

import "unsafe"

// unsafeBytesToString converts []byte to string without allocation.
// Callers only pass stack buffers that outlive the returned string's use.
func unsafeBytesToString(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(unsafe.SliceData(b), len(b))
}

// unsafeStringToBytes converts string to []byte without allocation.
// The result is read-only.
func unsafeStringToBytes(s string) []byte {
	if s == "" {
		return nil
	}
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

// pointerBytes views n bytes starting at p.
func pointerBytes(p *byte, n int) []byte {
	return unsafe.Slice(p, n)
}

// scanCString returns the number of bytes before the first zero byte at p,
// giving up once limit bytes have been read without finding one.
func scanCString(p *byte, limit int) (int, bool) {
	base := unsafe.Pointer(p)
	for i := 0; i <= limit; i++ {
		if *(*byte)(unsafe.Add(base, i)) == 0 {
			return i, true
		}
	}
	return limit + 1, false
}

// overlaps reports whether the backing memory of a and b intersects.
func overlaps[T any](a, b []T) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	size := unsafe.Sizeof(a[0])
	if size == 0 {
		return false
	}
	a0 := uintptr(unsafe.Pointer(unsafe.SliceData(a)))
	b0 := uintptr(unsafe.Pointer(unsafe.SliceData(b)))
	return a0 < b0+uintptr(len(b))*size && b0 < a0+uintptr(len(a))*size
}

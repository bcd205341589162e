package input

import "io"

// StartReader pumps bytes from r into the returned channel from a
// background goroutine, closing it on read error. With stdin in raw
// mode each keystroke arrives as soon as the terminal delivers it; a
// multi-byte escape sequence normally lands in a single read.
func StartReader(r io.Reader) <-chan byte {
	ch := make(chan byte, 64)
	go func() {
		defer close(ch)
		buf := make([]byte, 64)
		for {
			n, err := r.Read(buf)
			for i := 0; i < n; i++ {
				ch <- buf[i]
			}
			if err != nil {
				return
			}
		}
	}()
	return ch
}

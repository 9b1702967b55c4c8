package driver

import "os"

// ParseMode maps a C-style fopen mode string onto os.OpenFile flags.
//
// The base modes are "r" (read an existing file), "w" (create or truncate)
// and "a" (create or append). A '+' switches the stream to update mode,
// 'b' and 't' are accepted and ignored, and "wx" requests exclusive creation.
func ParseMode(mode string) (int, error) {
	if mode == "" {
		return 0, ErrInvalidMode
	}
	var flag int
	switch mode[0] {
	case 'r':
		flag = os.O_RDONLY
	case 'w':
		flag = os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	case 'a':
		flag = os.O_WRONLY | os.O_CREATE | os.O_APPEND
	default:
		return 0, ErrInvalidMode
	}
	for _, c := range mode[1:] {
		switch c {
		case '+':
			flag = flag&^os.O_WRONLY | os.O_RDWR
		case 'b', 't':
			// the binary/text distinction does not exist on POSIX systems
		case 'x':
			if mode[0] != 'w' {
				return 0, ErrInvalidMode
			}
			flag |= os.O_EXCL
		default:
			return 0, ErrInvalidMode
		}
	}
	return flag, nil
}

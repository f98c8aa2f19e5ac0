//go:build rp2040

package fmtx

import (
	"io"

	"romemu-go/x/strconvx"
)

// The firmware only formats error messages, so the MCU side knows %d, %x,
// %s and %%. Anything else is written back literally.

func Sprintf(format string, a ...any) string {
	return string(appendf(nil, format, a))
}

func Fprintf(w io.Writer, format string, a ...any) (int, error) {
	return w.Write(appendf(nil, format, a))
}

func appendf(dst []byte, format string, args []any) []byte {
	ai := 0
	for i := 0; i < len(format); i++ {
		c := format[i]
		if c != '%' || i+1 == len(format) {
			dst = append(dst, c)
			continue
		}
		i++
		verb := format[i]
		if verb == '%' {
			dst = append(dst, '%')
			continue
		}
		if ai == len(args) {
			dst = append(dst, '%', '!', verb)
			dst = append(dst, "(MISSING)"...)
			continue
		}
		arg := args[ai]
		ai++
		switch verb {
		case 'd':
			dst = appendInt(dst, arg, 10)
		case 'x':
			dst = appendInt(dst, arg, 16)
		case 's':
			switch s := arg.(type) {
			case string:
				dst = append(dst, s...)
			case error:
				dst = append(dst, s.Error()...)
			default:
				dst = append(dst, "%!s"...)
			}
		default:
			dst = append(dst, '%', verb)
		}
	}
	return dst
}

func appendInt(dst []byte, v any, base int) []byte {
	switch x := v.(type) {
	case int:
		return append(dst, strconvx.FormatInt(int64(x), base)...)
	case int32:
		return append(dst, strconvx.FormatInt(int64(x), base)...)
	case int64:
		return append(dst, strconvx.FormatInt(x, base)...)
	case uint:
		return append(dst, strconvx.FormatUint(uint64(x), base)...)
	case uint8:
		return append(dst, strconvx.FormatUint(uint64(x), base)...)
	case uint16:
		return append(dst, strconvx.FormatUint(uint64(x), base)...)
	case uint32:
		return append(dst, strconvx.FormatUint(uint64(x), base)...)
	case uint64:
		return append(dst, strconvx.FormatUint(x, base)...)
	}
	return append(dst, "%!d"...)
}

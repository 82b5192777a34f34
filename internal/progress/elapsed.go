package progress

import (
	"strconv"
	"strings"
	"time"
)

// Clock formats d as HH:MM:SS. Hours are not capped.
func Clock(d time.Duration) string {
	secs := max(int64(d/time.Second), 0)
	h, m, s := secs/3600, secs/60%60, secs%60

	b := make([]byte, 0, 8)
	b = appendTwo(b, h)
	b = append(b, ':')
	b = appendTwo(b, m)
	b = append(b, ':')
	return string(appendTwo(b, s))
}

func appendTwo(b []byte, n int64) []byte {
	if n < 10 {
		b = append(b, '0')
	}
	return strconv.AppendInt(b, n, 10)
}

// NiceElapsed spells d out in words, e.g. "1 hour, 2 minutes, and 3
// seconds". Anything a day or longer is ">1 day".
func NiceElapsed(d time.Duration) string {
	secs := max(int64(d/time.Second), 0)
	if secs >= 86400 {
		return ">1 day"
	}
	if secs == 0 {
		return "0 seconds"
	}

	var parts []string
	for _, u := range []struct {
		n    int64
		name string
	}{
		{secs / 3600, "hour"},
		{secs / 60 % 60, "minute"},
		{secs % 60, "second"},
	} {
		if u.n == 0 {
			continue
		}
		p := strconv.FormatInt(u.n, 10) + " " + u.name
		if u.n != 1 {
			p += "s"
		}
		parts = append(parts, p)
	}

	switch len(parts) {
	case 1:
		return parts[0]
	case 2:
		return parts[0] + " and " + parts[1]
	default:
		return strings.Join(parts[:len(parts)-1], ", ") + ", and " + parts[len(parts)-1]
	}
}

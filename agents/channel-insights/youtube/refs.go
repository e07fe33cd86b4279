package youtube

import (
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/aref-vc/youtube-content-analyzer/shared/insights"
)

var (
	ErrInvalidChannelRef = insights.ErrInvalidChannelRef
	ErrInvalidVideoRef   = insights.ErrInvalidVideoRef
)

var (
	channelIDRe = regexp.MustCompile(`^UC[A-Za-z0-9_-]{22}$`)
	videoIDRe   = regexp.MustCompile(`^[A-Za-z0-9_-]{11}$`)
	durationRe  = regexp.MustCompile(`^P(?:(\d+)D)?T?(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?$`)
)

// ChannelRef identifies a channel by exactly one of its ID, handle or legacy
// username.
type ChannelRef struct {
	ID       string
	Handle   string
	Username string
}

func (r ChannelRef) String() string {
	switch {
	case r.ID != "":
		return r.ID
	case r.Handle != "":
		return "@" + r.Handle
	default:
		return r.Username
	}
}

// ParseChannelRef accepts a channel ID, an @handle, or a channel URL of the
// /channel/, /@, /user/ or /c/ forms. Custom /c/ names are resolved as handles.
func ParseChannelRef(ref string) (ChannelRef, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return ChannelRef{}, ErrInvalidChannelRef
	}

	if channelIDRe.MatchString(ref) {
		return ChannelRef{ID: ref}, nil
	}
	if handle, ok := strings.CutPrefix(ref, "@"); ok {
		return handleRef(handle)
	}

	if !strings.Contains(ref, "://") {
		if strings.Contains(ref, "/") {
			ref = "https://" + ref
		} else {
			return handleRef(ref)
		}
	}

	u, err := url.Parse(ref)
	if err != nil {
		return ChannelRef{}, ErrInvalidChannelRef
	}

	segments := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(segments) == 0 || segments[0] == "" {
		return ChannelRef{}, ErrInvalidChannelRef
	}

	switch {
	case strings.HasPrefix(segments[0], "@"):
		return handleRef(segments[0][1:])
	case len(segments) < 2:
		return ChannelRef{}, ErrInvalidChannelRef
	case segments[0] == "channel" && channelIDRe.MatchString(segments[1]):
		return ChannelRef{ID: segments[1]}, nil
	case segments[0] == "user":
		return ChannelRef{Username: segments[1]}, nil
	case segments[0] == "c":
		return handleRef(segments[1])
	}
	return ChannelRef{}, ErrInvalidChannelRef
}

func handleRef(handle string) (ChannelRef, error) {
	if handle == "" || strings.ContainsAny(handle, " /?") {
		return ChannelRef{}, ErrInvalidChannelRef
	}
	return ChannelRef{Handle: handle}, nil
}

// ParseVideoID extracts the video ID from a bare ID or a watch, youtu.be,
// shorts, embed or live URL.
func ParseVideoID(ref string) (string, error) {
	ref = strings.TrimSpace(ref)
	if videoIDRe.MatchString(ref) {
		return ref, nil
	}

	if !strings.Contains(ref, "://") {
		ref = "https://" + ref
	}
	u, err := url.Parse(ref)
	if err != nil {
		return "", ErrInvalidVideoRef
	}

	var id string
	segments := strings.Split(strings.Trim(u.Path, "/"), "/")
	switch {
	case strings.HasSuffix(u.Hostname(), "youtu.be"):
		id = segments[0]
	case u.Query().Get("v") != "":
		id = u.Query().Get("v")
	case len(segments) == 2 && (segments[0] == "shorts" || segments[0] == "embed" || segments[0] == "live"):
		id = segments[1]
	}

	if !videoIDRe.MatchString(id) {
		return "", ErrInvalidVideoRef
	}
	return id, nil
}

// parseDurationSeconds converts an ISO 8601 duration such as PT1H2M3S or
// P1DT2H to seconds. Unparseable input yields 0.
func parseDurationSeconds(duration string) int {
	m := durationRe.FindStringSubmatch(duration)
	if m == nil {
		return 0
	}

	units := []int{86400, 3600, 60, 1}
	total := 0
	for i, unit := range units {
		if m[i+1] == "" {
			continue
		}
		if n, err := strconv.Atoi(m[i+1]); err == nil {
			total += n * unit
		}
	}
	return total
}

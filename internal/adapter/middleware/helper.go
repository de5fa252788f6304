package middleware

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"
)

func bodyHash(b []byte) string { s := sha256.Sum256(b); return hex.EncodeToString(s[:]) }

func buildKey(method, path, ownerID, requestID string) string {
	return "idemp:loan:" + strings.ToLower(method) + ":" + path + ":" + ownerID + ":" + requestID
}

var (
	reUUID  = regexp.MustCompile(`^[a-f0-9]{8}-[a-f0-9]{4}-[1-5][a-f0-9]{3}-[89ab][a-f0-9]{3}-[a-f0-9]{12}$`)
	reHex32 = regexp.MustCompile(`^[a-f0-9]{32}$`)
)

func validRequestID(id string) bool {
	id = strings.ToLower(strings.TrimSpace(id))
	return reUUID.MatchString(id) || reHex32.MatchString(id)
}

// requestIdentity pulls the retry identity out of the headers. The second
// string return is an error message for the client; empty means valid.
func requestIdentity(req *http.Request) (reqID, ownerID string, reqAt time.Time, badReq string) {
	reqID = strings.TrimSpace(req.Header.Get(HeaderRequestID))
	if reqID == "" {
		return "", "", time.Time{}, "missing " + HeaderRequestID
	}
	if !validRequestID(reqID) {
		return "", "", time.Time{}, "invalid " + HeaderRequestID + " format"
	}

	ownerID = strings.TrimSpace(req.Header.Get(HeaderOwnerID))
	if ownerID == "" {
		return "", "", time.Time{}, "missing " + HeaderOwnerID
	}
	if !reHex32.MatchString(ownerID) {
		return "", "", time.Time{}, "invalid " + HeaderOwnerID
	}

	reqAt, err := parseRequestAt(req.Header.Get(HeaderRequestAt))
	if err != nil {
		return "", "", time.Time{}, err.Error()
	}
	return reqID, ownerID, reqAt, ""
}

// parseRequestAt accepts epoch seconds, epoch milliseconds, or
// RFC3339/RFC3339Nano with an explicit timezone. Naive local timestamps
// are rejected.
func parseRequestAt(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, errors.New("missing " + HeaderRequestAt)
	}
	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		if n > 1e12 { // ms
			return time.UnixMilli(n).UTC(), nil
		}
		return time.Unix(n, 0).UTC(), nil
	}
	if t, err := time.Parse(time.RFC3339Nano, raw); err == nil {
		return t.UTC(), nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.UTC(), nil
	}
	return time.Time{}, errors.New(HeaderRequestAt + " must be epoch (s/ms) or RFC3339 with timezone")
}

// ---- redis accessors ----

func (i *Idempotency) lock(ctx context.Context, key string, e entry) (bool, error) {
	payload, _ := json.Marshal(e)
	return i.rdb.SetNX(ctx, key, payload, provisionalLockTTL).Result()
}

func (i *Idempotency) load(ctx context.Context, key string) (entry, error) {
	var e entry
	v, err := i.rdb.Get(ctx, key).Bytes()
	if err != nil {
		return e, err
	}
	err = json.Unmarshal(v, &e)
	return e, err
}

func (i *Idempotency) finish(ctx context.Context, key string, e entry) error {
	payload, _ := json.Marshal(e)
	return i.rdb.Set(ctx, key, payload, i.ttl).Err()
}

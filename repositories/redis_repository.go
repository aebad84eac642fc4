// File: /repositories/redis_repository.go
package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	"sportsbuddy-api/models"
)

const (
	eventKeyPrefix   = "event:"
	membersKeySuffix = ":members"
	eventsByTimeKey  = "events:by_time"
	userKeyPrefix    = "user:"
	userEmailPrefix  = "user:email:"
)

// Scripts run inside Redis, so each check and the write that depends on it
// cannot interleave with another client.
var (
	addMemberScript = redis.NewScript(`
if redis.call('EXISTS', KEYS[1]) == 0 then
  return 0
end
redis.call('SADD', KEYS[2], ARGV[1])
return 1`)

	removeMemberScript = redis.NewScript(`
if redis.call('EXISTS', KEYS[1]) == 0 then
  return 0
end
redis.call('SREM', KEYS[2], ARGV[1])
return 1`)

	// KEYS: email index, user hash. ARGV: user id, then field/value pairs.
	createUserScript = redis.NewScript(`
if redis.call('SETNX', KEYS[1], ARGV[1]) == 0 then
  return 0
end
redis.call('HSET', KEYS[2], unpack(ARGV, 2))
return 1`)
)

func NewRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return client, nil
}

// RedisEventRepository stores each event as a hash and its members as a set.
// The events:by_time sorted set (score = event time in ms) drives listing order.
type RedisEventRepository struct {
	client *redis.Client
}

func NewRedisEventRepository(client *redis.Client) *RedisEventRepository {
	return &RedisEventRepository{client: client}
}

func eventKey(id string) string   { return eventKeyPrefix + id }
func membersKey(id string) string { return eventKeyPrefix + id + membersKeySuffix }

// Create writes the event hash, the member set and the time index in one MULTI.
// CreatedAt comes from the Redis server clock.
func (r *RedisEventRepository) Create(ctx context.Context, event *models.Event) (string, error) {
	now, err := r.client.Time(ctx).Result()
	if err != nil {
		return "", redisError("create event", err)
	}

	stored := event.Clone()
	stored.ID = uuid.New().String()
	stored.CreatedAt = now.UTC()
	members := models.NormalizeMembers(stored.JoinedUsers)

	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, eventKey(stored.ID), eventFields(stored))
		if len(members) > 0 {
			pipe.SAdd(ctx, membersKey(stored.ID), toInterfaces(members)...)
		}
		pipe.ZAdd(ctx, eventsByTimeKey, &redis.Z{Score: timeScore(stored.EventTime), Member: stored.ID})
		return nil
	})
	if err != nil {
		return "", redisError("create event", err)
	}

	event.ID = stored.ID
	event.CreatedAt = stored.CreatedAt
	return stored.ID, nil
}

func (r *RedisEventRepository) Read(ctx context.Context, id string) (*models.Event, error) {
	var (
		fields  *redis.StringStringMapCmd
		members *redis.StringSliceCmd
	)
	_, err := r.client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		fields = pipe.HGetAll(ctx, eventKey(id))
		members = pipe.SMembers(ctx, membersKey(id))
		return nil
	})
	if err != nil {
		return nil, redisError("read event", err)
	}
	return decodeEvent(id, fields.Val(), members.Val())
}

// Update watches the event key so a concurrent delete aborts the transaction.
func (r *RedisEventRepository) Update(ctx context.Context, id string, patch models.EventPatch) (*models.Event, error) {
	key := eventKey(id)
	err := r.client.Watch(ctx, func(tx *redis.Tx) error {
		exists, err := tx.Exists(ctx, key).Result()
		if err != nil {
			return err
		}
		if exists == 0 {
			return fmt.Errorf("%w: %s", models.ErrNotFound, id)
		}

		patched := &models.Event{}
		patch.Apply(patched)
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			if values := patchFields(patch, patched); len(values) > 0 {
				pipe.HSet(ctx, key, values)
			}
			if patch.EventTime != nil {
				pipe.ZAdd(ctx, eventsByTimeKey, &redis.Z{Score: timeScore(*patch.EventTime), Member: id})
			}
			return nil
		})
		return err
	}, key)
	if err != nil {
		return nil, redisError("update event", err)
	}
	return r.Read(ctx, id)
}

func (r *RedisEventRepository) Delete(ctx context.Context, id string) error {
	key := eventKey(id)
	err := r.client.Watch(ctx, func(tx *redis.Tx) error {
		exists, err := tx.Exists(ctx, key).Result()
		if err != nil {
			return err
		}
		if exists == 0 {
			return fmt.Errorf("%w: %s", models.ErrNotFound, id)
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Del(ctx, key, membersKey(id))
			pipe.ZRem(ctx, eventsByTimeKey, id)
			return nil
		})
		return err
	}, key)
	if err != nil {
		return redisError("delete event", err)
	}
	return nil
}

// List walks the time index and filters in process.
func (r *RedisEventRepository) List(ctx context.Context, filter models.EventFilter, order models.EventOrder) ([]*models.Event, error) {
	ids, err := r.client.ZRange(ctx, eventsByTimeKey, 0, -1).Result()
	if err != nil {
		return nil, redisError("list events", err)
	}
	if len(ids) == 0 {
		return []*models.Event{}, nil
	}

	fields := make([]*redis.StringStringMapCmd, len(ids))
	members := make([]*redis.StringSliceCmd, len(ids))
	_, err = r.client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		for i, id := range ids {
			fields[i] = pipe.HGetAll(ctx, eventKey(id))
			members[i] = pipe.SMembers(ctx, membersKey(id))
		}
		return nil
	})
	if err != nil {
		return nil, redisError("list events", err)
	}

	events := make([]*models.Event, 0, len(ids))
	for i, id := range ids {
		event, err := decodeEvent(id, fields[i].Val(), members[i].Val())
		if errors.Is(err, models.ErrNotFound) {
			// deleted between ZRANGE and HGETALL
			continue
		}
		if err != nil {
			return nil, err
		}
		if filter.Match(event) {
			events = append(events, event)
		}
	}
	models.SortEvents(events, order)
	return events, nil
}

func (r *RedisEventRepository) AddMember(ctx context.Context, id, uid string) (*models.Event, error) {
	return r.runMemberScript(ctx, addMemberScript, "join event", id, uid)
}

func (r *RedisEventRepository) RemoveMember(ctx context.Context, id, uid string) (*models.Event, error) {
	return r.runMemberScript(ctx, removeMemberScript, "leave event", id, uid)
}

func (r *RedisEventRepository) runMemberScript(ctx context.Context, script *redis.Script, op, id, uid string) (*models.Event, error) {
	found, err := script.Run(ctx, r.client, []string{eventKey(id), membersKey(id)}, uid).Int()
	if err != nil {
		return nil, redisError(op, err)
	}
	if found == 0 {
		return nil, fmt.Errorf("%w: %s", models.ErrNotFound, id)
	}
	return r.Read(ctx, id)
}

// RedisUserRepository keeps users as hashes with a unique email index key.
type RedisUserRepository struct {
	client *redis.Client
}

func NewRedisUserRepository(client *redis.Client) *RedisUserRepository {
	return &RedisUserRepository{client: client}
}

// Create claims the email and writes the user hash in one script, so a
// failure leaves neither behind.
func (r *RedisUserRepository) Create(ctx context.Context, user *models.User) error {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	user.Email = strings.ToLower(user.Email)

	now, err := r.client.Time(ctx).Result()
	if err != nil {
		return redisError("create user", err)
	}
	createdAt := now.UTC()

	interests, err := json.Marshal(user.SportsInterests)
	if err != nil {
		return fmt.Errorf("%w: encode interests: %w", models.ErrValidation, err)
	}

	args := []interface{}{
		user.ID,
		"id", user.ID,
		"display_name", user.DisplayName,
		"email", user.Email,
		"password", user.Password,
		"role", string(user.Role),
		"sports_interests", string(interests),
		"ability_level", user.AbilityLevel,
		"location", user.Location,
		"created_at", createdAt.Format(time.RFC3339Nano),
	}
	keys := []string{userEmailPrefix + user.Email, userKeyPrefix + user.ID}
	created, err := createUserScript.Run(ctx, r.client, keys, args...).Int()
	if err != nil {
		return redisError("create user", err)
	}
	if created == 0 {
		return fmt.Errorf("%w: %s", models.ErrEmailTaken, user.Email)
	}

	user.CreatedAt = createdAt
	user.UpdatedAt = createdAt
	return nil
}

func (r *RedisUserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	fields, err := r.client.HGetAll(ctx, userKeyPrefix+id).Result()
	if err != nil {
		return nil, redisError("read user", err)
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: %s", models.ErrUserNotFound, id)
	}

	user := &models.User{
		ID:           fields["id"],
		DisplayName:  fields["display_name"],
		Email:        fields["email"],
		Password:     fields["password"],
		Role:         models.Role(fields["role"]),
		AbilityLevel: fields["ability_level"],
		Location:     fields["location"],
	}
	if raw := fields["sports_interests"]; raw != "" {
		if err := json.Unmarshal([]byte(raw), &user.SportsInterests); err != nil {
			return nil, fmt.Errorf("%w: decode user %s: %w", models.ErrPersistence, id, err)
		}
	}
	if user.CreatedAt, err = time.Parse(time.RFC3339Nano, fields["created_at"]); err != nil {
		return nil, fmt.Errorf("%w: decode user %s: %w", models.ErrPersistence, id, err)
	}
	user.UpdatedAt = user.CreatedAt
	return user, nil
}

func (r *RedisUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	id, err := r.client.Get(ctx, userEmailPrefix+strings.ToLower(email)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("%w: %s", models.ErrUserNotFound, email)
	}
	if err != nil {
		return nil, redisError("read user", err)
	}
	return r.GetByID(ctx, id)
}

// Helper functions

func eventFields(e *models.Event) map[string]interface{} {
	return map[string]interface{}{
		"id":            e.ID,
		"name":          e.Name,
		"sport":         e.Sport,
		"location":      e.Location,
		"description":   e.Description,
		"event_time":    e.EventTime.UTC().Format(time.RFC3339Nano),
		"creator_id":    e.CreatorID,
		"creator_email": e.CreatorEmail,
		"status":        string(e.Status),
		"created_at":    e.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

// patchFields returns the hash fields touched by the patch, read from patched.
func patchFields(patch models.EventPatch, patched *models.Event) map[string]interface{} {
	all := eventFields(patched)
	values := make(map[string]interface{})
	for column := range patch.Columns() {
		values[column] = all[column]
	}
	return values
}

func decodeEvent(id string, fields map[string]string, members []string) (*models.Event, error) {
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: %s", models.ErrNotFound, id)
	}
	e := &models.Event{
		ID:           id,
		Name:         fields["name"],
		Sport:        fields["sport"],
		Location:     fields["location"],
		Description:  fields["description"],
		CreatorID:    fields["creator_id"],
		CreatorEmail: fields["creator_email"],
		Status:       models.EventStatus(fields["status"]),
		JoinedUsers:  models.NormalizeMembers(members),
	}
	var err error
	if e.EventTime, err = time.Parse(time.RFC3339Nano, fields["event_time"]); err != nil {
		return nil, fmt.Errorf("%w: decode event %s: %w", models.ErrPersistence, id, err)
	}
	if e.CreatedAt, err = time.Parse(time.RFC3339Nano, fields["created_at"]); err != nil {
		return nil, fmt.Errorf("%w: decode event %s: %w", models.ErrPersistence, id, err)
	}
	return e, nil
}

func timeScore(t time.Time) float64 {
	return float64(t.UnixMilli())
}

func toInterfaces(values []string) []interface{} {
	out := make([]interface{}, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}

func redisError(op string, err error) error {
	if errors.Is(err, models.ErrNotFound) || errors.Is(err, models.ErrPersistence) {
		return err
	}
	return fmt.Errorf("%w: %s: %w", models.ErrPersistence, op, err)
}

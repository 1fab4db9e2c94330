// Package model declares the Request document: a stream with its public and
// private tariffs, the gifts attached to it and debug timing information.
//
// Field names are the wire names in every format. Scalar types with a textual
// form (Duration, URL, Timestamp, RequestType) implement encoding.TextMarshaler
// and encoding.TextUnmarshaler, so the JSON, YAML and TOML libraries all
// round-trip them as strings.
package model

import (
	"github.com/google/uuid"
)

// User is part of the declared schema but is not referenced by Request.
type User struct {
	Name      string `json:"name" yaml:"name" toml:"name" validate:"required"`
	Email     string `json:"email" yaml:"email" toml:"email" validate:"required,email"`
	BirthDate string `json:"birth_date" yaml:"birth_date" toml:"birth_date"`
}

type PublicTariff struct {
	ID          uint32   `json:"id" yaml:"id" toml:"id"`
	Price       uint32   `json:"price" yaml:"price" toml:"price"`
	Duration    Duration `json:"duration" yaml:"duration" toml:"duration" validate:"gte=0"`
	Description string   `json:"description" yaml:"description" toml:"description"`
}

type PrivateTariff struct {
	ClientPrice uint32   `json:"client_price" yaml:"client_price" toml:"client_price"`
	Duration    Duration `json:"duration" yaml:"duration" toml:"duration" validate:"gte=0"`
	Description string   `json:"description" yaml:"description" toml:"description"`
}

// Stream is the tariffed stream a request refers to. Settings is an opaque
// flag set and is carried through unchanged.
type Stream struct {
	UserID        uuid.UUID     `json:"user_id" yaml:"user_id" toml:"user_id" validate:"uuid"`
	IsPrivate     bool          `json:"is_private" yaml:"is_private" toml:"is_private"`
	Settings      uint32        `json:"settings" yaml:"settings" toml:"settings"`
	ShardURL      URL           `json:"shard_url" yaml:"shard_url" toml:"shard_url" validate:"url"`
	PublicTariff  PublicTariff  `json:"public_tariff" yaml:"public_tariff" toml:"public_tariff"`
	PrivateTariff PrivateTariff `json:"private_tariff" yaml:"private_tariff" toml:"private_tariff"`
}

type Gift struct {
	ID          uint32 `json:"id" yaml:"id" toml:"id"`
	Price       uint32 `json:"price" yaml:"price" toml:"price"`
	Description string `json:"description" yaml:"description" toml:"description"`
}

type Debug struct {
	Duration Duration  `json:"duration" yaml:"duration" toml:"duration" validate:"gte=0"`
	At       Timestamp `json:"at" yaml:"at" toml:"at"`
}

// Request is the document root.
type Request struct {
	Type   RequestType `json:"type" yaml:"type" toml:"type" validate:"reqtype"`
	Stream Stream      `json:"stream" yaml:"stream" toml:"stream"`
	Gifts  []Gift      `json:"gifts" yaml:"gifts" toml:"gifts" validate:"dive"`
	Debug  Debug       `json:"debug" yaml:"debug" toml:"debug"`
}

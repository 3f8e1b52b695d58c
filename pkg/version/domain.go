// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package version

import (
	"fmt"
	"reflect"
	"strings"
	"unsafe"
)

// Number is the set of integer types usable as version fields: signed and
// unsigned at 8, 16, 32 and 64 bits plus the pointer-sized int and uint.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Max returns the largest value of N. It is a reserved sentinel and never a
// legitimate version field.
func Max[N Number]() N {
	var zero N
	if ^zero > zero {
		return ^zero
	}
	return ^Min[N]()
}

// Min returns the smallest value of N. Like Max it is a reserved sentinel.
func Min[N Number]() N {
	var zero N
	if ^zero > zero {
		return zero
	}
	return N(1) << (Bits[N]() - 1)
}

// One returns the increment used to build exclusive bounds.
func One[N Number]() N {
	return 1
}

// Bits returns the width of N in bits.
func Bits[N Number]() uint {
	var zero N
	return uint(unsafe.Sizeof(zero)) * 8
}

// Signed reports whether N is a signed type.
func Signed[N Number]() bool {
	var zero N
	return ^zero < zero
}

// Domain names one of the ten numeric domains at the document and API
// boundaries, where the Go type parameter is not available.
type Domain string

const (
	DomainInt8    Domain = "i8"
	DomainInt16   Domain = "i16"
	DomainInt32   Domain = "i32"
	DomainInt64   Domain = "i64"
	DomainInt     Domain = "isize"
	DomainUint8   Domain = "u8"
	DomainUint16  Domain = "u16"
	DomainUint32  Domain = "u32"
	DomainUint64  Domain = "u64"
	DomainUint    Domain = "usize"
	domainUnknown Domain = ""
)

// Domains returns all supported domains, signed first, narrowest first.
func Domains() []Domain {
	return []Domain{
		DomainInt8, DomainInt16, DomainInt32, DomainInt64, DomainInt,
		DomainUint8, DomainUint16, DomainUint32, DomainUint64, DomainUint,
	}
}

// String returns the domain name.
func (d Domain) String() string {
	return string(d)
}

// IsValid reports whether d names a supported domain.
func (d Domain) IsValid() bool {
	for _, known := range Domains() {
		if d == known {
			return true
		}
	}
	return false
}

// ParseDomain resolves a domain name. Matching is case-insensitive and
// also accepts Go type names such as "uint16".
func ParseDomain(s string) (Domain, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	switch name {
	case "int8":
		return DomainInt8, nil
	case "int16":
		return DomainInt16, nil
	case "int32":
		return DomainInt32, nil
	case "int64":
		return DomainInt64, nil
	case "int":
		return DomainInt, nil
	case "uint8", "byte":
		return DomainUint8, nil
	case "uint16":
		return DomainUint16, nil
	case "uint32":
		return DomainUint32, nil
	case "uint64":
		return DomainUint64, nil
	case "uint":
		return DomainUint, nil
	}
	if d := Domain(name); d.IsValid() {
		return d, nil
	}
	return domainUnknown, fmt.Errorf("%w: %q (supported values: %s)", ErrUnknownDomain, s, Domains())
}

// DomainOf returns the domain of N.
func DomainOf[N Number]() Domain {
	switch reflect.TypeFor[N]().Kind() {
	case reflect.Int8:
		return DomainInt8
	case reflect.Int16:
		return DomainInt16
	case reflect.Int32:
		return DomainInt32
	case reflect.Int64:
		return DomainInt64
	case reflect.Int:
		return DomainInt
	case reflect.Uint8:
		return DomainUint8
	case reflect.Uint16:
		return DomainUint16
	case reflect.Uint32:
		return DomainUint32
	case reflect.Uint64:
		return DomainUint64
	case reflect.Uint:
		return DomainUint
	default:
		return domainUnknown
	}
}

// DomainInfo describes a domain's limits in decimal text so every domain,
// including u64, fits one shape.
type DomainInfo struct {
	Domain Domain `json:"domain" yaml:"domain"`
	Bits   uint   `json:"bits" yaml:"bits"`
	Signed bool   `json:"signed" yaml:"signed"`
	Min    Scalar `json:"min" yaml:"min"`
	Max    Scalar `json:"max" yaml:"max"`
}

// InfoOf returns the limits of N.
func InfoOf[N Number]() DomainInfo {
	return DomainInfo{
		Domain: DomainOf[N](),
		Bits:   Bits[N](),
		Signed: Signed[N](),
		Min:    FormatScalar(Min[N]()),
		Max:    FormatScalar(Max[N]()),
	}
}

// Info returns the limits of d.
func (d Domain) Info() (DomainInfo, error) {
	switch d {
	case DomainInt8:
		return InfoOf[int8](), nil
	case DomainInt16:
		return InfoOf[int16](), nil
	case DomainInt32:
		return InfoOf[int32](), nil
	case DomainInt64:
		return InfoOf[int64](), nil
	case DomainInt:
		return InfoOf[int](), nil
	case DomainUint8:
		return InfoOf[uint8](), nil
	case DomainUint16:
		return InfoOf[uint16](), nil
	case DomainUint32:
		return InfoOf[uint32](), nil
	case DomainUint64:
		return InfoOf[uint64](), nil
	case DomainUint:
		return InfoOf[uint](), nil
	default:
		return DomainInfo{}, fmt.Errorf("%w: %q", ErrUnknownDomain, string(d))
	}
}

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

package check

import (
	"github.com/NVIDIA/fast-version/pkg/header"
	"github.com/NVIDIA/fast-version/pkg/version"
)

// DomainList describes every supported numeric domain.
type DomainList struct {
	header.Header `json:",inline" yaml:",inline"`

	Backend string               `json:"backend" yaml:"backend"`
	Domains []version.DomainInfo `json:"domains" yaml:"domains"`
}

// ListDomains returns the limits of all ten domains and the build-time
// default backend.
func ListDomains() *DomainList {
	list := &DomainList{Backend: version.Backend}
	for _, d := range version.Domains() {
		info, err := d.Info()
		if err != nil {
			continue
		}
		list.Domains = append(list.Domains, info)
	}
	list.Init(header.KindDomainList, "")
	return list
}

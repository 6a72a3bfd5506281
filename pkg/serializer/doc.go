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

// Package serializer provides encoding of command results and decoding of
// configuration files.
//
// # Supported Formats
//
// JSON:
//   - Machine-parseable, indented representation
//   - Standard encoding/json package
//
// YAML:
//   - Human-readable, the default for configuration files
//   - gopkg.in/yaml.v3 package
//
// Table:
//   - Flattened FIELD/VALUE rows for terminal viewing
//   - Keys follow json tag names joined with "."
//   - Write-only (no deserialization support)
//
// # Usage - Encoding
//
// Write to stdout:
//
//	w := serializer.NewStdoutWriter(serializer.FormatYAML)
//	if err := w.Serialize(ctx, result); err != nil {
//	    return err
//	}
//
// Write to a file. The file is replaced atomically when Close is called,
// and left untouched when nothing was serialized:
//
//	w, err := serializer.NewFileWriter(serializer.FormatJSON, "next.json")
//	if err != nil {
//	    return err
//	}
//	defer w.Close()
//
// # Usage - Decoding
//
// Decoding rejects unknown fields and treats an empty file as a zero value:
//
//	cfg, err := serializer.FromFile[version.Config]("relver.yaml")
//
// Format detection from the file extension:
//   - .json → FormatJSON
//   - .yaml, .yml → FormatYAML
//   - anything else → FormatYAML
package serializer

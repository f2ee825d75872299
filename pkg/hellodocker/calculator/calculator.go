/*
Copyright 2024 The Skaffold Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package calculator

// Add returns a + b.
func Add(a, b int) int { return a + b }

// Subtract returns a - b.
func Subtract(a, b int) int { return a - b }

// Multiply returns a * b.
func Multiply(a, b int) int { return a * b }

// Divide returns a / b truncated toward zero. It panics if b is zero.
func Divide(a, b int) int { return a / b }

// Operation is one row of the calculator page.
type Operation struct {
	Label  string
	Result int
}

// Demo evaluates the fixed operations shown on the calculator page, in order.
func Demo() []Operation {
	return []Operation{
		{Label: "10 + 20", Result: Add(10, 20)},
		{Label: "20 - 5", Result: Subtract(20, 5)},
		{Label: "6 × 7", Result: Multiply(6, 7)},
		{Label: "100 ÷ 4", Result: Divide(100, 4)},
	}
}

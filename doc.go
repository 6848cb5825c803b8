// Package integra is your toolbox for numerical integration — from
// plain Newton-Cotes sums to Gauss quadrature rules driven by a parallel
// tridiagonal-eigenvalue core.
//
// 🚀 What is integra?
//
//	A pure-Go library that brings together:
//		• Eigenvalue core: Sturm-sequence bisection for symmetric
//		  tridiagonal (Jacobi) matrices, parallel per-root searches
//		• Orthogonal polynomials: Laguerre, Hermite, Chebyshev, Legendre —
//		  evaluation, derivatives and zeros
//		• Gauss quadrature: Gauss-Laguerre, Gauss-Hermite,
//		  Gauss-Chebyshev (both kinds), Gauss-Legendre
//		• Newton-Cotes: rectangle, trapezoid, Simpson, Newton 3/8
//		• Romberg extrapolation & adaptive Simpson subdivision
//
// ✨ Why choose integra?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – sentinel errors, deterministic results,
//     bounded iteration counts (nothing can hang)
//   - Concurrency where it pays – independent root searches run on a
//     worker pool; everything shared is read-only
//
// Under the hood, everything is organized as one package per method family:
//
//	eigen/       — tridiagonal eigenvalues (Gershgorin + Sturm + bisection)
//	orthopoly/   — orthogonal polynomial families & their zeros
//	gauss/       — Gauss quadrature rules built on eigen + orthopoly
//	newtoncotes/ — composite rectangle/trapezoid/Simpson/3-8 rules
//	romberg/     — Richardson-extrapolated trapezoid ladder
//	adaptive/    — Simpson-Simpson adaptive subdivision
//
// Quick ASCII example:
//
//	∫₀^∞ f(x)·e⁻ˣ dx  ≈  Σ wᵢ·f(xᵢ)
//
//	where the xᵢ are the zeros of the degree-n Laguerre polynomial —
//	computed as eigenvalues of its tridiagonal Jacobi matrix.
//
// Dive into the per-package doc.go files for algorithm walkthroughs and
// complexity notes, and examples/ for runnable scenarios.
//
//	go get github.com/katalvlaran/integra
package integra

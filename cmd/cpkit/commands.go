package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/cpkit/bitmask"
	"github.com/katalvlaran/cpkit/dijkstra"
	"github.com/katalvlaran/cpkit/dsu"
	"github.com/katalvlaran/cpkit/fenwick"
	"github.com/katalvlaran/cpkit/internal/config"
	"github.com/katalvlaran/cpkit/internal/fastio"
	"github.com/katalvlaran/cpkit/modint"
	"github.com/katalvlaran/cpkit/mst"
)

// readDims reads k non-negative integers such as "n m".
func readDims(in *fastio.Reader, names ...string) ([]int, error) {
	out := make([]int, len(names))
	for i, name := range names {
		v, err := in.Int()
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		if v < 0 {
			return nil, fmt.Errorf("%s=%d must be non-negative", name, v)
		}
		out[i] = v
	}

	return out, nil
}

func newSSSPCmd(a *app) *cobra.Command {
	var directed bool
	cmd := &cobra.Command{
		Use:   "sssp",
		Short: "Single-source shortest paths (Dijkstra)",
		Long: `Each case: "n m s" then m lines "u v w" (0-based, w ≥ 0).
Prints the n distances from s, -1 for unreachable vertices.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runCases(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), func(in *fastio.Reader) (solveFunc, error) {
				d, err := readDims(in, "n", "m", "s")
				if err != nil {
					return nil, err
				}
				n, m, s := d[0], d[1], d[2]
				g := dijkstra.NewGraph(n)
				for i := 0; i < m; i++ {
					e, err := in.Int64s(3)
					if err != nil {
						return nil, fmt.Errorf("edge %d: %w", i, err)
					}
					u, v := int(e[0]), int(e[1])
					if u < 0 || u >= n || v < 0 || v >= n {
						return nil, fmt.Errorf("edge %d: endpoint out of range", i)
					}
					if directed {
						g.AddEdge(u, v, e[2])
					} else {
						g.AddUndirected(u, v, e[2])
					}
				}
				return func() (emitFunc, error) {
					dist, err := dijkstra.ShortestPaths(g, s)
					if err != nil {
						return nil, err
					}
					out := make([]int64, len(dist))
					for i, x := range dist {
						if x == dijkstra.Inf {
							x = -1
						}
						out[i] = x
					}
					return emitInts(out...), nil
				}, nil
			})
		},
	}
	cmd.Flags().BoolVar(&directed, "directed", false, "treat each edge as a one-way arc")

	return cmd
}

func newAssignCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "assign",
		Short: "Minimum-cost assignment by bitmask DP",
		Long: `Each case: "n" then an n×n matrix, row k holding worker k's cost per job.
Prints the optimal total cost. n is limited to 20.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runCases(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), func(in *fastio.Reader) (solveFunc, error) {
				d, err := readDims(in, "n")
				if err != nil {
					return nil, err
				}
				n := d[0]
				if n > bitmask.MaxBits {
					return nil, fmt.Errorf("%w: n=%d", bitmask.ErrTooLarge, n)
				}
				cost := make([][]int64, n)
				for k := range cost {
					if cost[k], err = in.Int64s(n); err != nil {
						return nil, fmt.Errorf("row %d: %w", k, err)
					}
				}
				return func() (emitFunc, error) {
					_, best, err := bitmask.Assignment(cost)
					if err != nil {
						return nil, err
					}
					return emitInts(best), nil
				}, nil
			})
		},
	}
}

func newDSUCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "dsu",
		Short: "Union-find over 0…n-1",
		Long: `Each case: "n q" then q lines "op a b": op 0 unites a and b,
op 1 asks whether a and b share a set. Prints the answers (1/0) of the op 1
lines on one line.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runCases(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), func(in *fastio.Reader) (solveFunc, error) {
				d, err := readDims(in, "n", "q")
				if err != nil {
					return nil, err
				}
				n, q := d[0], d[1]
				ops := make([][3]int, q)
				for i := range ops {
					v, err := in.Int64s(3)
					if err != nil {
						return nil, fmt.Errorf("op %d: %w", i, err)
					}
					if v[0] != 0 && v[0] != 1 {
						return nil, fmt.Errorf("op %d: unknown op %d", i, v[0])
					}
					if v[1] < 0 || int(v[1]) >= n || v[2] < 0 || int(v[2]) >= n {
						return nil, fmt.Errorf("op %d: element out of range", i)
					}
					ops[i] = [3]int{int(v[0]), int(v[1]), int(v[2])}
				}
				return func() (emitFunc, error) {
					set := dsu.New(n)
					var out []int64
					for _, op := range ops {
						if op[0] == 0 {
							set.Unite(op[1], op[2])
							continue
						}
						var same int64
						if set.Same(op[1], op[2]) {
							same = 1
						}
						out = append(out, same)
					}
					return emitInts(out...), nil
				}, nil
			})
		},
	}
}

func newFenwickCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "fenwick",
		Short: "Point updates and range sums",
		Long: `Each case: "n q", the n initial values, then q lines: "1 i v" adds v at i,
"2 l r" asks for the sum over [l, r]. Prints the answers on one line.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runCases(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), func(in *fastio.Reader) (solveFunc, error) {
				d, err := readDims(in, "n", "q")
				if err != nil {
					return nil, err
				}
				n, q := d[0], d[1]
				vals, err := in.Int64s(n)
				if err != nil {
					return nil, fmt.Errorf("values: %w", err)
				}
				ops := make([][3]int64, q)
				for i := range ops {
					v, err := in.Int64s(3)
					if err != nil {
						return nil, fmt.Errorf("op %d: %w", i, err)
					}
					if v[0] != 1 && v[0] != 2 {
						return nil, fmt.Errorf("op %d: unknown op %d", i, v[0])
					}
					if v[1] < 0 || v[1] >= int64(n) || (v[0] == 2 && (v[2] < 0 || v[2] >= int64(n))) {
						return nil, fmt.Errorf("op %d: index out of range", i)
					}
					ops[i] = [3]int64{v[0], v[1], v[2]}
				}
				return func() (emitFunc, error) {
					t := fenwick.FromSlice(vals)
					var out []int64
					for _, op := range ops {
						if op[0] == 1 {
							t.Update(int(op[1]), op[2])
							continue
						}
						out = append(out, t.RangeSum(int(op[1]), int(op[2])))
					}
					return emitInts(out...), nil
				}, nil
			})
		},
	}
}

func newFractionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "fraction",
		Short: "Recover a small fraction p/q from a field residue",
		Long: `Each case: one integer, reduced into the configured prime field.
Prints "p/q" for the first denominator q that works, or "not find.".`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := a.cfg.FractionOptions()
			return a.runCases(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), func(in *fastio.Reader) (solveFunc, error) {
				v, err := in.Int64()
				if err != nil {
					return nil, err
				}
				return func() (emitFunc, error) {
					switch a.cfg.Modulus {
					case config.Modulus998244353:
						return emitLine(modint.New[modint.Mod998244353](v).FractionString(opts...)), nil
					default:
						return emitLine(modint.NewZ(v).FractionString(opts...)), nil
					}
				}, nil
			})
		},
	}
}

func newMSTCmd(a *app) *cobra.Command {
	method := mst.MethodKruskal
	cmd := &cobra.Command{
		Use:   "mst",
		Short: "Minimum spanning tree weight",
		Long: `Each case: "n m" then m lines "u v w" (0-based, undirected).
Prints the MST weight, or -1 if the graph is disconnected.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runCases(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), func(in *fastio.Reader) (solveFunc, error) {
				d, err := readDims(in, "n", "m")
				if err != nil {
					return nil, err
				}
				n, m := d[0], d[1]
				edges := make([]mst.WeightedEdge, m)
				for i := range edges {
					e, err := in.Int64s(3)
					if err != nil {
						return nil, fmt.Errorf("edge %d: %w", i, err)
					}
					edges[i] = mst.WeightedEdge{U: int(e[0]), V: int(e[1]), W: e[2]}
				}
				return func() (emitFunc, error) {
					_, w, err := mst.Compute(method, n, edges)
					if errors.Is(err, mst.ErrDisconnected) {
						return emitInts(-1), nil
					}
					if err != nil {
						return nil, err
					}
					return emitInts(w), nil
				}, nil
			})
		},
	}
	cmd.Flags().StringVar(&method, "method", mst.MethodKruskal, "kruskal or prim")

	return cmd
}

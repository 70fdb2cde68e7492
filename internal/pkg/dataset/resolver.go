package dataset

import (
	"context"
	"errors"
	"fmt"
	"io"
	log "log/slog"

	"Pulseboard/internal/model"
)

// OriginSample 内置示例数据的来源标识
const OriginSample = "sample"

// Result 数据源解析结果
// Fallback 为 true 时 Tables 是内置示例数据，Warning 非空说明外部数据解析失败的原因
type Result struct {
	Tables   *model.Tables
	Origin   string
	Fallback bool
	Warning  string
}

// Resolve 读取外部数据源的四张表；任何一张缺失都整体回退到示例数据，不做部分合并
// 解析或校验失败同样整体回退，并在 Warning 中给出原因。该函数不会失败
func Resolve(ctx context.Context, src Source) Result {
	if src == nil {
		return fallback("")
	}

	tables, err := load(ctx, src)
	if err != nil {
		if errors.Is(err, ErrMissing) {
			log.InfoContext(ctx, "dataset incomplete, using sample data", "source", src.Name())
			return fallback("")
		}
		log.WarnContext(ctx, "dataset rejected, using sample data", "source", src.Name(), "err", err)
		return fallback(fmt.Sprintf("Upload error: %v. Loading sample data instead.", err))
	}

	log.InfoContext(ctx, "dataset loaded", "source", src.Name(),
		"influencers", len(tables.Influencers),
		"posts", len(tables.Posts),
		"campaigns", len(tables.Campaigns),
		"payouts", len(tables.Payouts))
	return Result{Tables: tables, Origin: src.Name()}
}

func fallback(warning string) Result {
	return Result{Tables: Sample(), Origin: OriginSample, Fallback: true, Warning: warning}
}

func load(ctx context.Context, src Source) (*model.Tables, error) {
	readers := make(map[Kind]io.ReadCloser, len(Kinds))
	defer func() {
		for _, rc := range readers {
			_ = rc.Close()
		}
	}()

	// 先确认四张表齐全再解析
	for _, kind := range Kinds {
		rc, err := src.Open(ctx, kind)
		if err != nil {
			if errors.Is(err, ErrMissing) {
				return nil, ErrMissing
			}
			return nil, fmt.Errorf("open %s: %w", kind, err)
		}
		readers[kind] = rc
	}

	var (
		t   model.Tables
		err error
	)
	if t.Influencers, err = ParseInfluencers(readers[KindInfluencers]); err != nil {
		return nil, err
	}
	if t.Posts, err = ParsePosts(readers[KindPosts]); err != nil {
		return nil, err
	}
	if t.Campaigns, err = ParseCampaigns(readers[KindCampaigns]); err != nil {
		return nil, err
	}
	if t.Payouts, err = ParsePayouts(readers[KindPayouts]); err != nil {
		return nil, err
	}
	return &t, nil
}

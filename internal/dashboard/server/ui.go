package server

import (
	"net/http"
)

func (s *Server) handleUI(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(uiHTML))
}

const uiHTML = `<!doctype html>
<html>
<head>
  <meta charset="utf-8"/>
  <meta name="viewport" content="width=device-width, initial-scale=1"/>
  <title>polydash</title>
  <style>
    body { font-family: ui-sans-serif, system-ui, -apple-system, Segoe UI, Roboto, Arial; margin: 0; }
    .wrap { max-width: 1080px; margin: 0 auto; padding: 16px; }
    .row { display:flex; gap: 8px; align-items:center; flex-wrap: wrap; }
    .muted { color:#666; font-size: 12px; }
    table { border-collapse: collapse; width: 100%; margin: 12px 0; }
    th, td { border-bottom: 1px solid #eee; padding: 6px 8px; text-align: left; font-size: 14px; }
    th { color:#444; font-weight: 600; }
    td.num, th.num { text-align: right; font-variant-numeric: tabular-nums; }
    .up { color:#0a7d36; }
    .down { color:#b00020; }
    input { padding: 4px 6px; }
    button { margin-right: 8px; }
    .err { color:#b00020; }
  </style>
</head>
<body>
<div class="wrap">
  <h2>Polymarket dashboard</h2>

  <h3>24h movers</h3>
  <div class="row">
    <label>limit <input id="limit" type="number" min="1" max="50" value="10" style="width:70px"/></label>
    <label>min volume <input id="minVolume" type="number" value="1000" style="width:110px"/></label>
    <button onclick="reloadMovers()">Refresh</button>
    <span id="moversAsOf" class="muted"></span>
  </div>
  <div id="movers" class="muted">Loading…</div>

  <h3>Positions</h3>
  <div class="row">
    <input id="user" placeholder="0x wallet address (optional if server has a default)" style="width:420px"/>
    <button onclick="reloadPositions()">Load</button>
  </div>
  <div id="positions" class="muted"></div>
</div>

<script>
async function api(path) {
  const res = await fetch(path);
  const data = await res.json().catch(() => ({}));
  if (!res.ok) throw new Error(data.error || ('HTTP ' + res.status));
  return data;
}

function escapeHTML(s){ return String(s ?? '').replaceAll('&','&amp;').replaceAll('<','&lt;').replaceAll('>','&gt;'); }

function fmt(n, digits) {
  if (n == null || !Number.isFinite(n)) return '';
  return n.toFixed(digits);
}

function fmtPct(n) {
  if (n == null || !Number.isFinite(n)) return '';
  return (n * 100).toFixed(1) + '%';
}

function moversTable(movers) {
  if (!movers.length) return '<div class="muted">No movers returned.</div>';
  let html = '<table><tr><th>Market</th><th class="num">Price</th><th class="num">24h &Delta;</th><th class="num">24h %</th><th class="num">Vol (24h)</th></tr>';
  for (const m of movers) {
    const title = m.slug
      ? '<a href="https://polymarket.com/market/' + encodeURIComponent(m.slug) + '" target="_blank" rel="noreferrer">' + escapeHTML(m.title) + '</a>'
      : escapeHTML(m.title);
    const delta = m.change24h;
    const sign = delta != null && delta > 0 ? '+' : '';
    const cls = delta != null && delta < 0 ? 'down' : 'up';
    html += '<tr><td>' + title + '</td>'
      + '<td class="num">' + fmt(m.price, 4) + '</td>'
      + '<td class="num ' + cls + '">' + (delta == null ? '' : sign + fmt(delta, 4)) + '</td>'
      + '<td class="num ' + cls + '">' + fmtPct(m.percentChange24h) + '</td>'
      + '<td class="num">' + (m.volume24hr == null ? '' : Math.round(m.volume24hr).toLocaleString()) + '</td></tr>';
  }
  return html + '</table>';
}

function pickString(p, keys) {
  for (const k of keys) {
    const v = p[k];
    if (typeof v === 'string' && v.trim()) return v;
  }
  return '';
}

function pickNumber(p, keys) {
  for (const k of keys) {
    const v = p[k];
    if (typeof v === 'number') return v;
    if (typeof v === 'string' && v.trim() && !Number.isNaN(Number(v))) return Number(v);
  }
  return null;
}

function positionsTable(positions) {
  if (!positions.length) return '<div class="muted">No positions returned.</div>';
  let html = '<table><tr><th>Market</th><th>Outcome</th><th class="num">Shares</th><th class="num">Avg</th><th class="num">Current</th><th class="num">Unrealized</th></tr>';
  for (const p of positions) {
    if (typeof p !== 'object' || p === null) continue;
    const market = pickString(p, ['market', 'market_title', 'title']) || pickString(p, ['market_id', 'marketId']) || '(unknown)';
    const outcome = pickString(p, ['outcome', 'outcome_name', 'outcomeId', 'outcome_id']);
    html += '<tr><td>' + escapeHTML(market) + '</td>'
      + '<td>' + escapeHTML(outcome) + '</td>'
      + '<td class="num">' + (pickNumber(p, ['shares', 'size']) ?? '') + '</td>'
      + '<td class="num">' + (pickNumber(p, ['avg_price', 'avgPrice']) ?? '') + '</td>'
      + '<td class="num">' + (pickNumber(p, ['current_price', 'currentPrice', 'curPrice']) ?? '') + '</td>'
      + '<td class="num">' + (pickNumber(p, ['unrealized_pnl', 'unrealizedPnl', 'cashPnl']) ?? '') + '</td></tr>';
  }
  return html + '</table>';
}

async function reloadMovers() {
  const root = document.getElementById('movers');
  const limit = document.getElementById('limit').value || '10';
  const minVolume = document.getElementById('minVolume').value || '1000';
  root.innerHTML = 'Loading…';
  try {
    const data = await api('/movers?limit=' + encodeURIComponent(limit) + '&minVolume=' + encodeURIComponent(minVolume));
    root.innerHTML = moversTable(data.movers || []);
    document.getElementById('moversAsOf').textContent = data.asOf ? 'as of ' + data.asOf : '';
  } catch (e) {
    root.innerHTML = '<div class="err">' + escapeHTML(e.message) + '</div>';
  }
}

async function reloadPositions() {
  const root = document.getElementById('positions');
  const user = document.getElementById('user').value.trim();
  root.innerHTML = 'Loading…';
  try {
    const data = await api('/positions' + (user ? '?user=' + encodeURIComponent(user) : ''));
    root.innerHTML = positionsTable(data.positions || []);
  } catch (e) {
    root.innerHTML = '<div class="err">' + escapeHTML(e.message) + '</div>';
  }
}

reloadMovers();
</script>
</body>
</html>`
